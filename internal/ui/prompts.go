package ui

import (
	"errors"

	"github.com/AlecAivazis/survey/v2"
)

// ErrNonInteractive is returned by prompts that have no sensible default
// when the UI is in non-interactive mode.
var ErrNonInteractive = errors.New("input required but running non-interactively")

// PromptYesNo prompts the user for a yes/no answer.
// In non-interactive mode the default is returned without asking.
func (u *UI) PromptYesNo(prompt string, defaultYes bool) (bool, error) {
	if u.nonInteractive {
		return defaultYes, nil
	}

	var result bool
	p := &survey.Confirm{
		Message: prompt,
		Default: defaultYes,
	}

	err := survey.AskOne(p, &result)
	return result, err
}

// PromptMultiSelect prompts the user to select several items from a list and
// returns their indices in list order
func (u *UI) PromptMultiSelect(prompt string, options []string) ([]int, error) {
	if u.nonInteractive {
		return nil, ErrNonInteractive
	}

	var selected []string
	p := &survey.MultiSelect{
		Message: prompt,
		Options: options,
	}

	if err := survey.AskOne(p, &selected, survey.WithValidator(survey.Required)); err != nil {
		return nil, err
	}

	selectedMap := make(map[string]bool, len(selected))
	for _, sel := range selected {
		selectedMap[sel] = true
	}

	var indices []int
	for i, opt := range options {
		if selectedMap[opt] {
			indices = append(indices, i)
		}
	}

	return indices, nil
}
