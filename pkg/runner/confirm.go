package runner

import "fmt"

// Confirm runs the force variant of the pending command.
type Confirm struct {
	unforceable
}

func (*Confirm) Keyword() string { return KeywordConfirm }

// Execute clears the slot before running the force variant, so a failure
// inside it never leaves a stale pending command behind.
func (*Confirm) Execute(env *Env) (Result, error) {
	pending := env.Session.Pending()
	if pending == nil {
		return Result{}, ErrNoPendingCommand
	}
	forced := pending.Force()
	env.Session.ClearPending()
	if forced == nil {
		return Result{}, fmt.Errorf("%w: %s", ErrNotForceable, pending.Keyword())
	}
	return forced.Execute(env)
}

// Help asks the presentation layer to show the command reference.
type Help struct {
	unforceable
}

func (*Help) Keyword() string { return KeywordHelp }

func (*Help) Execute(*Env) (Result, error) {
	return Result{Feedback: "Showing help.", ShowHelp: true}, nil
}

// Exit asks the presentation layer to quit.
type Exit struct {
	unforceable
}

func (*Exit) Keyword() string { return KeywordExit }

func (*Exit) Execute(*Env) (Result, error) {
	return Result{Feedback: "Exiting address book as requested ...", Exit: true}, nil
}
