package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"go-hospital-admin/config"
	"go-hospital-admin/internal/apiclient"
	"go-hospital-admin/internal/dashboard"
	"go-hospital-admin/pkg/validator"

	"github.com/sirupsen/logrus"
)

type sessionFlags struct {
	baseURL string
	token   string
	dedupe  bool
	verbose bool
}

// session is the state shared by every console command.
type session struct {
	out   io.Writer
	in    *bufio.Reader
	log   *logrus.Logger
	flags sessionFlags

	client    *apiclient.Client
	validator *validator.CustomValidator
	dedupe    bool
	// assumeYes skips the confirmation prompt for the current command.
	assumeYes bool
}

func newSession(out, errOut io.Writer, in io.Reader) *session {
	log := logrus.New()
	log.SetOutput(errOut)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	return &session{
		out:       out,
		in:        bufio.NewReader(in),
		log:       log,
		validator: validator.NewValidator(),
	}
}

func (s *session) connect() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	clientCfg := cfg.Client
	if s.flags.baseURL != "" {
		clientCfg.BaseURL = s.flags.baseURL
	}
	if s.flags.token != "" {
		clientCfg.Token = s.flags.token
	}
	s.dedupe = clientCfg.Deduplicate || s.flags.dedupe
	if s.flags.verbose {
		s.log.SetLevel(logrus.DebugLevel)
	}

	client, err := apiclient.New(apiclient.Config{
		BaseURL: clientCfg.BaseURL,
		Token:   clientCfg.Token,
		Timeout: clientCfg.Timeout,
		Logger:  s.log,
	})
	if err != nil {
		return err
	}
	s.client = client
	return nil
}

func (s *session) options() dashboard.Options {
	return dashboard.Options{
		Notifier:    dashboard.NewLogNotifier(s.log),
		Confirmer:   s,
		Log:         s.log,
		Deduplicate: s.dedupe,
	}
}

// Confirm asks on the terminal unless --yes was given.
func (s *session) Confirm(ctx context.Context, prompt string) bool {
	if s.assumeYes {
		return true
	}
	fmt.Fprintf(s.out, "%s [y/N]: ", prompt)
	answer, err := s.in.ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}

// checkDraft enforces the required fields before anything is sent.
func (s *session) checkDraft(draft interface{}) error {
	if err := s.validator.Validate(draft); err != nil {
		for field, message := range s.validator.FormatValidationErrors(err) {
			s.log.WithField("field", field).Error(message)
		}
		return fmt.Errorf("draft is incomplete")
	}
	return nil
}
