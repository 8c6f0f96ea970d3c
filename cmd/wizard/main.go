// Interactive terminal front-end for the signup wizard. Walks the step
// sequence, validates each answer, and posts the submission once.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/modelvision/leadgen/wizard"
)

var prompts = map[wizard.Field]string{
	wizard.FieldName:         "Full name",
	wizard.FieldGender:       "Gender (female/male/other)",
	wizard.FieldEmail:        "Email address",
	wizard.FieldAge:          "Age",
	wizard.FieldMobile:       "Mobile number",
	wizard.FieldParentMobile: "Parent's mobile number",
	wizard.FieldPostcode:     "Postcode",
	wizard.FieldPhoto:        "Photo file path (optional, enter to skip)",
}

func main() {
	var server, category string
	flag.StringVar(&server, "server", "http://localhost:8080", "signup server base URL")
	flag.StringVar(&category, "category", "", "marketing category tag for this variant")
	flag.Parse()

	wz := wizard.New(wizard.NewClient(server, category))
	in := bufio.NewScanner(os.Stdin)

	fmt.Println("Model application — type 'back' to return to the previous step.")
	for {
		field := wz.Current()
		fmt.Printf("[%d/%d] %s: ", wz.StepIndex()+1, len(wz.Steps()), prompts[field])
		if !in.Scan() {
			return
		}
		answer := strings.TrimSpace(in.Text())

		if answer == "back" {
			wz.Back()
			continue
		}

		if field == wizard.FieldPhoto {
			if answer != "" && !attachPhoto(wz, answer) {
				continue
			}
			if submit(wz) {
				return
			}
			// answers are kept on failure; enter retries
			continue
		}

		wz.Enter(answer)
		if err := wz.Next(); err != nil {
			fmt.Println(err)
		}
	}
}

func attachPhoto(wz *wizard.Wizard, path string) bool {
	f, err := os.Open(path)
	if err != nil {
		fmt.Println("Could not open photo:", err)
		return false
	}
	defer f.Close()

	if err := wz.AttachPhoto(f); err != nil {
		fmt.Println("Could not read photo:", err)
		return false
	}
	return true
}

func submit(wz *wizard.Wizard) bool {
	fmt.Println("Submitting...")
	signup, err := wz.Submit(context.Background())
	if err != nil {
		fmt.Println("Submission failed:", err)
		return false
	}
	fmt.Printf("Application received! Reference #%d\n", signup.ID)
	return true
}
