package cli

import (
	"github.com/AlecAivazis/survey/v2"
)

func surveyConfirm(message string) (bool, error) {
	var proceed bool
	prompt := &survey.Confirm{
		Message: message,
		Default: false,
	}
	if err := survey.AskOne(prompt, &proceed); err != nil {
		return false, err
	}
	return proceed, nil
}
