package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

var landingPageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8" />
<meta name="viewport" content="width=device-width, initial-scale=1.0" />
<title>Atlas Trips API</title>
<style>
body { font-family: Arial, sans-serif; margin: 0; background: linear-gradient(135deg,#0f766e,#134e4a); color: #fff; min-height: 100vh; display: flex; flex-direction: column; }
main { flex: 1; padding: 60px 20px; text-align: center; }
a { color: #99f6e4; }
code { background: rgba(255,255,255,0.15); padding: 2px 6px; border-radius: 4px; }
footer { text-align: center; padding: 20px; font-size: 14px; opacity: 0.8; }
</style>
</head>
<body>
<main>
  <h1>Atlas Trips API</h1>
  <p>The headless backend for the Atlas Trips travel site and its admin portal.</p>
  <p>Browse the API reference at <a href="/swagger/index.html">/swagger</a> or check <code>GET /health</code>.</p>
</main>
<footer>Atlas Trips</footer>
</body>
</html>`

// RegisterPages serves the minimal landing page at the root so a browser
// hitting the API host sees something other than a 404.
func RegisterPages(e *echo.Echo) {
	e.GET("/", func(c echo.Context) error {
		return c.HTML(http.StatusOK, landingPageHTML)
	})
}
