package main

import (
	"flag"
	"net/http"
	"os"
	"os/exec"
	"runtime"
	"time"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/apex/log/handlers/json"

	httpserver "boardmoves/internal/server/http"
	"boardmoves/internal/server/session"
	"boardmoves/internal/storage"
)

func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default: // linux / bsd
		cmd = exec.Command("xdg-open", url)
	}

	_ = cmd.Start() // 不阻塞，不关心错误（某些服务器环境可能无图形界面）
}

func setupLogging(level, format string) {
	switch format {
	case "json":
		log.SetHandler(json.New(os.Stderr))
	default:
		log.SetHandler(cli.New(os.Stderr))
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		log.WithError(err).Warnf("unknown log level %q, using info", level)
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
}

func main() {
	addr := flag.String("addr", ":2888", "listen address")
	webDir := flag.String("web", "./web", "directory with the board widget (index.html / js / svg)")
	dbDir := flag.String("db", "", "badger directory for board sessions; empty keeps sessions in memory")
	persist := flag.Bool("persist", false, "store sessions in the per-user data directory when -db is empty")
	ttl := flag.Duration("session-ttl", 7*24*time.Hour, "how long a stored session lives after its last update (0 = forever)")
	logLevel := flag.String("log-level", "info", "debug, info, warn, error")
	logFormat := flag.String("log-format", "cli", "cli or json")
	open := flag.Bool("open", false, "open the board in the default browser")
	flag.Parse()

	setupLogging(*logLevel, *logFormat)

	var store session.Store
	dir := *dbDir
	if dir == "" && *persist {
		d, err := storage.DataDir()
		if err != nil {
			log.WithError(err).Fatal("resolve data dir")
		}
		dir = d
	}
	if dir != "" {
		st, err := storage.Open(storage.Options{Dir: dir, TTL: *ttl})
		if err != nil {
			log.WithError(err).Fatal("open storage")
		}
		defer st.Close()
		if n, err := st.Prune(); err != nil {
			log.WithError(err).Warn("prune stored sessions")
		} else if ids, err := st.BoardIDs(); err == nil {
			log.WithFields(log.Fields{"sessions": len(ids), "pruned": n}).Info("storage ready")
		}
		store = st
	}

	srv := httpserver.NewServer(session.NewManager(store), *webDir)

	log.WithFields(log.Fields{
		"addr": *addr,
		"web":  *webDir,
		"db":   dir,
	}).Info("listening")

	if *open {
		// 延迟 100ms 打开默认浏览器，否则可能服务器未启动完成
		go func() {
			time.Sleep(100 * time.Millisecond)
			openBrowser("http://127.0.0.1" + *addr)
		}()
	}

	if err := http.ListenAndServe(*addr, srv); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
