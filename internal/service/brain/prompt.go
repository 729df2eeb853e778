package brain

import (
	"errors"
	"fmt"
	"os"

	"github.com/sandevgo/docbot/internal/core"
	"gopkg.in/yaml.v3"
)

// RefusalAnswer is the phrase the preamble teaches the model to use when the
// documentation does not cover a question.
const RefusalAnswer = "Sorry, I don't know how to help with that."

// Preamble is the fixed few-shot prefix of every prompt: a system
// instruction followed by one exemplar question and answer.
type Preamble struct {
	System    string `yaml:"system"`
	User      string `yaml:"user"`
	Assistant string `yaml:"assistant"`
}

func DefaultPreamble() Preamble {
	return Preamble{
		System: "You are a very enthusiastic Replicate representative who loves to help people! " +
			"Given the following sections from the Replicate documentation, answer the question using only that information. " +
			"If you are unsure and the answer is not explicitly written in the documentation, say \"" + RefusalAnswer + "\". " +
			"Do not answer with something that is not written in the documentation.",
		User: "CONTEXT:\nYou can use Replicate to run machine learning models in the cloud from your own code, " +
			"without having to set up any servers. Our community has published hundreds of open-source models that you can run, " +
			"or you can run your own models.\n\nQUESTION:\nwhat is replicate?",
		Assistant: "Replicate lets you run machine learning models with a cloud API, without having to understand " +
			"the intricacies of machine learning or manage your own infrastructure. You can run open-source models " +
			"that other people have published, or package and publish your own models. Those models can be public or private.",
	}
}

// LoadPreamble reads a preamble override from a YAML file. A missing file
// yields the default preamble; fields left empty keep their defaults.
func LoadPreamble(path string) (Preamble, error) {
	p := DefaultPreamble()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return p, nil
	}
	if err != nil {
		return p, fmt.Errorf("read prompt file: %w", err)
	}

	var override Preamble
	if err := yaml.Unmarshal(data, &override); err != nil {
		return p, fmt.Errorf("parse prompt file: %w", err)
	}

	if override.System != "" {
		p.System = override.System
	}
	if override.User != "" {
		p.User = override.User
	}
	if override.Assistant != "" {
		p.Assistant = override.Assistant
	}
	return p, nil
}

func (p Preamble) Messages() []core.Message {
	return []core.Message{
		{Role: core.RoleSystem, Content: p.System},
		{Role: core.RoleUser, Content: p.User},
		{Role: core.RoleAssistant, Content: p.Assistant},
	}
}

func questionMessage(contextText, question string, withContext bool) core.Message {
	content := "QUESTION:\n" + question
	if withContext {
		content = "CONTEXT:\n" + contextText + "\n\n" + content
	}
	return core.Message{Role: core.RoleUser, Content: content}
}
