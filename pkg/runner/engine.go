package runner

import (
	"log/slog"

	"tableflip.dev/weddingbook/pkg/app"
)

// Parser turns a line of user input into a Command.
type Parser interface {
	Parse(line string) (Command, error)
}

// PendingPolicy decides what happens to a pending command when the user
// submits something other than Confirm.
type PendingPolicy int

const (
	// DiscardPending drops the pending command as soon as any other input
	// arrives, so a later "y" cannot apply a stale command.
	DiscardPending PendingPolicy = iota
	// KeepPending leaves the pending command in place until it is confirmed
	// or replaced by a newer one.
	KeepPending
)

// Option customises an Engine.
type Option func(*Engine)

// WithPendingPolicy overrides the default DiscardPending policy.
func WithPendingPolicy(p PendingPolicy) Option {
	return func(e *Engine) {
		e.policy = p
	}
}

// WithLogger sets the logger used to record executed commands.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithParser sets the parser used by ExecuteLine.
func WithParser(p Parser) Option {
	return func(e *Engine) {
		e.parser = p
	}
}

// Engine executes commands one at a time against a Service and owns the
// confirmation session.
type Engine struct {
	service *app.Service
	session *Session
	parser  Parser
	policy  PendingPolicy
	log     *slog.Logger
}

// NewEngine returns an engine over service.
func NewEngine(service *app.Service, opts ...Option) *Engine {
	e := &Engine{
		service: service,
		session: &Session{},
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Service returns the service commands run against.
func (e *Engine) Service() *app.Service {
	return e.service
}

// Session returns the confirmation session.
func (e *Engine) Session() *Session {
	return e.session
}

// ExecuteLine parses line and executes the resulting command. A parse
// failure counts as input other than Confirm.
func (e *Engine) ExecuteLine(line string) (Result, error) {
	if e.parser == nil {
		panic("runner: engine has no parser")
	}
	cmd, err := e.parser.Parse(line)
	if err != nil {
		e.settle(nil)
		e.log.Info("parse failed", "input", line, "error", err)
		return Result{}, err
	}
	return e.Execute(cmd)
}

// Execute runs cmd. When the result asks for confirmation, cmd becomes the
// pending command.
func (e *Engine) Execute(cmd Command) (Result, error) {
	e.settle(cmd)

	res, err := cmd.Execute(&Env{Service: e.service, Session: e.session})
	if err != nil {
		e.log.Info("command failed", "command", cmd.Keyword(), "error", err)
		return Result{}, userError(err)
	}
	if res.NeedsConfirmation {
		e.session.SetPending(cmd)
		e.log.Debug("command awaiting confirmation", "command", cmd.Keyword())
		return res, nil
	}
	e.log.Debug("command executed", "command", cmd.Keyword(), "refresh", res.RefreshView)
	return res, nil
}

// settle applies the pending policy before next runs. next is nil for
// unparseable input.
func (e *Engine) settle(next Command) {
	if e.policy == KeepPending {
		return
	}
	if next != nil && next.Keyword() == KeywordConfirm {
		return
	}
	if e.session.Pending() != nil {
		e.log.Debug("discarding pending command", "command", e.session.Pending().Keyword())
		e.session.ClearPending()
	}
}
