package app

import (
	"io"

	"github.com/chzyer/readline"
	bosherr "github.com/cloudfoundry/bosh-utils/errors"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 . Prompter

type Prompter interface {
	Prompt(question string) (string, error)
	Close() error
}

type readlinePrompter struct {
	instance *readline.Instance
}

func NewReadlinePrompter(stdin io.ReadCloser, stdout io.Writer) (Prompter, error) {
	instance, err := readline.NewEx(&readline.Config{
		Stdin:        stdin,
		Stdout:       stdout,
		Stderr:       stdout,
		HistoryLimit: -1,
	})
	if err != nil {
		return nil, bosherr.WrapError(err, "Opening terminal for prompts")
	}

	return readlinePrompter{instance: instance}, nil
}

func (p readlinePrompter) Prompt(question string) (string, error) {
	p.instance.SetPrompt(question)

	line, err := p.instance.Readline()
	if err == readline.ErrInterrupt {
		return "", bosherr.Error("Interrupted")
	}
	if err != nil {
		return "", bosherr.WrapError(err, "Reading answer")
	}

	return line, nil
}

func (p readlinePrompter) Close() error {
	return p.instance.Close()
}
