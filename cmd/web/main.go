package main

import (
	"html/template"
	"net"
	"net/http"
	"os"

	"github.com/tomz197/spacerocks/internal/config"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = "8080"
)

var page = template.Must(template.New("index").Parse(`<!doctype html>
<html>
<head><meta charset="utf-8"><title>spacerocks</title></head>
<body style="background:#000;color:#ddd;font-family:monospace">
<h1>spacerocks</h1>
<p>Asteroids in your terminal. Connect with:</p>
<pre>ssh -t {{.SSHHost}} -p {{.SSHPort}}</pre>
<p>A/D or arrows turn, W or up thrusts, space fires, Q quits.</p>
</body>
</html>
`))

type pageData struct {
	SSHHost string
	SSHPort string
}

func main() {
	envErr := config.LoadDotEnv()
	logger := config.NewLogger(os.Stderr, "spacerocks-web")
	if envErr != nil {
		logger.Warn("ignoring .env", "err", envErr)
	}

	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)
	data := pageData{
		SSHHost: config.GetEnv("SSH_DISPLAY_HOST", "your-server.com"),
		SSHPort: config.GetEnv("SSH_PORT", "2222"),
	}

	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := page.Execute(w, data); err != nil {
			logger.Error("render page", "err", err)
		}
	})

	addr := net.JoinHostPort(host, port)
	logger.Info("starting web server", "addr", "http://"+addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		logger.Fatal("server error", "err", err)
	}
}
