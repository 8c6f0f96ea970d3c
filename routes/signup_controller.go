package routes

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/go-chi/render"

	"github.com/modelvision/leadgen/app"
	"github.com/modelvision/leadgen/httpx"
	"github.com/modelvision/leadgen/log"
	"github.com/modelvision/leadgen/model"
)

// SubmitSignup runs the submission pipeline: best-effort photo store,
// mandatory record insert, best-effort notification. Only the insert can
// fail the request.
func SubmitSignup(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := model.SignupRequest{}
		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			httpx.LogStatusMsg(w, r, http.StatusBadRequest, log.DebugLevel, "request.parse_body", "invalid request body")
			return
		}

		photoURL := storePhoto(app, req)

		signup := req.Normalize(photoURL)
		signup.CreatedAt = time.Now().UTC()

		err = app.QueryRowContext(r.Context(), `
			INSERT INTO signups (created_at, name, email, age, gender, mobile, parent_mobile, postcode, photo_url, category)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			RETURNING id`,
			signup.CreatedAt,
			signup.Name,
			signup.Email,
			signup.Age,
			signup.Gender,
			signup.Mobile,
			nullable(signup.ParentMobile),
			signup.Postcode,
			signup.PhotoURL,
			signup.Category,
		).Scan(&signup.ID)
		if err != nil {
			httpx.LogInternalError(w, r, "db.insert_signup", err, "could not save signup")
			return
		}

		err = app.Notifier.SignupReceived(signup)
		if err != nil {
			// the lead is saved; notification failure must not surface
			log.Errorf("notify.signup: %s", err)
		}

		render.JSON(w, r, map[string]any{
			"success": true,
			"data":    signup,
		})
	}
}

// ListSignups returns every stored lead, newest last. Reached only through
// the admin middleware.
func ListSignups(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := app.QueryContext(r.Context(), `
			SELECT id, created_at, name, email, age, gender, mobile, parent_mobile, postcode, photo_url, category
			FROM signups
			ORDER BY id`)
		if err != nil {
			httpx.LogInternalError(w, r, "db.get_signups", err, "could not fetch signups")
			return
		}
		defer rows.Close()

		signups := []model.Signup{}
		for rows.Next() {
			s := model.Signup{}
			var parentMobile *string
			err = rows.Scan(
				&s.ID, &s.CreatedAt,
				&s.Name, &s.Email, &s.Age, &s.Gender, &s.Mobile,
				&parentMobile, &s.Postcode, &s.PhotoURL, &s.Category,
			)
			if err != nil {
				httpx.LogInternalError(w, r, "db.get_signups.scan", err, "could not fetch signups")
				return
			}
			if parentMobile != nil {
				s.ParentMobile = *parentMobile
			}
			signups = append(signups, s)
		}

		render.JSON(w, r, map[string]any{
			"success": true,
			"signups": signups,
		})
	}
}

var (
	reDataURIMime = regexp.MustCompile(`^data:(.*?);base64$`)
	reWhitespace  = regexp.MustCompile(`\s+`)
)

// storePhoto uploads an embedded photo and returns its public URL. Any
// failure is logged and swallowed: the submission proceeds without a photo
// rather than aborting.
func storePhoto(app app.App, req model.SignupRequest) string {
	if !strings.HasPrefix(req.Photo, "data:image") {
		return ""
	}

	mime, data, err := decodeDataURI(req.Photo)
	if err != nil {
		log.Warnf("photo.decode: %s", err)
		return ""
	}

	url, err := app.Store.Upload(photoKey(req.Name), mime, data)
	if err != nil {
		log.Warnf("photo.upload: %s", err)
		return ""
	}
	return url
}

func decodeDataURI(uri string) (mime string, data []byte, err error) {
	head, body, found := strings.Cut(uri, ",")
	if !found {
		return "", nil, errors.New("malformed data URI")
	}

	mime = "image/jpeg"
	if m := reDataURIMime.FindStringSubmatch(head); m != nil {
		mime = m[1]
	}

	data, err = base64.StdEncoding.DecodeString(body)
	if err != nil {
		return "", nil, fmt.Errorf("decoding data URI body: %w", err)
	}
	return mime, data, nil
}

// photoKey derives the object key from a timestamp and the slugified
// applicant name: <epoch-ms>-<slug>.jpg
func photoKey(name string) string {
	slug := strings.ToLower(reWhitespace.ReplaceAllString(strings.TrimSpace(name), "-"))
	return fmt.Sprintf("%d-%s.jpg", time.Now().UnixMilli(), slug)
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
