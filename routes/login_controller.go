package routes

import (
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/modelvision/leadgen/app"
	"github.com/modelvision/leadgen/httpx"
	"github.com/modelvision/leadgen/log"
)

// Login exchanges Basic credentials for a bearer token via the password
// grant. The bearer server only speaks form-encoded bodies, so the request
// is rewritten before delegation.
func Login(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok {
			httpx.LogStatus(w, r, http.StatusUnauthorized, log.DebugLevel, "login.basic_auth")
			return
		}

		body := url.Values{
			"grant_type": {"password"},
			"username":   {user},
			"password":   {pass},
		}
		r.Body = io.NopCloser(strings.NewReader(body.Encode()))
		r.Header.Set("content-type", "application/x-www-form-urlencoded")
		r.Header.Set("content-length", strconv.Itoa(len(body.Encode())))
		app.UserCredentials(w, r)
	}
}

var reRefreshToken = regexp.MustCompile(`(?i)^refresh\s+(.*)`)

func Refresh(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("authorization")
		match := reRefreshToken.FindStringSubmatch(auth)
		if len(match) == 0 {
			httpx.LogStatus(w, r, http.StatusUnauthorized, log.DebugLevel, "refresh.token")
			return
		}
		token := match[1]

		body := url.Values{
			"grant_type":    {"refresh_token"},
			"refresh_token": {token},
		}

		req, err := http.NewRequest("POST", "/", strings.NewReader(body.Encode()))
		if err != nil {
			httpx.LogStatus(w, r, http.StatusInternalServerError, log.ErrorLevel, "refresh.new_request")
			return
		}
		req.Header.Set("content-type", "application/x-www-form-urlencoded")
		req.Header.Set("content-length", strconv.Itoa(len(body.Encode())))

		resp := httpx.NewResponseBuffer()
		app.UserCredentials(resp, req)
		resp.Flush(w)
	}
}
