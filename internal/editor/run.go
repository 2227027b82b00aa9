package editor

import (
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/mstrebkov/ledit/internal/config"
	"github.com/mstrebkov/ledit/internal/logger"
	"github.com/mstrebkov/ledit/internal/session"
)

// Run starts the editor: loads config, initializes logging and session
// state, opens the optional file argument and drives the event loop
// until quit.
func Run(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := logger.Init(os.Getenv("LEDIT_DEBUG") != ""); err != nil {
		return err
	}
	defer logger.Close()

	sm, err := session.NewManager()
	if err != nil {
		// The editor works without persistence.
		logger.Warn("session state disabled", "err", err)
		sm = nil
	}
	if sm != nil {
		defer sm.Stop()
	}

	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()

	ed := New(cfg)
	ed.SetSessionManager(sm)
	if len(args) > 0 {
		if err := ed.OpenFile(args[0]); err != nil {
			return err
		}
	} else {
		ed.OpenLastActive()
	}

	ed.Render(s)
	for {
		ev := s.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ed.HandleKey(ev) {
				ed.SyncSession()
				return nil
			}
		case *tcell.EventResize:
			s.Sync()
		}
		ed.Render(s)
	}
}
