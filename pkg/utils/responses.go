package utils

import (
	"net/http"
)

// Redirect issues a 302 to dest. Every access denial in the application
// degrades to this.
func Redirect(w http.ResponseWriter, r *http.Request, dest string) {
	http.Redirect(w, r, dest, http.StatusFound)
}

// ResponseText writes a plain text body with a custom status code
func ResponseText(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	w.Write([]byte(message))
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter) {
	ResponseText(w, http.StatusInternalServerError, "Internal Server Error")
}
