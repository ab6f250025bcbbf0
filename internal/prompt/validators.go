// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package prompt

import (
	"errors"
)

var (
	errNoAnswer    = errors.New("no answer given")
	errBlankAnswer = errors.New("must not be blank")
)

// AnswerValidator rejects an answer by returning an error.
type AnswerValidator func(any) error

// ValidateAnswer runs value through each validator in turn and returns the
// first failure.
func ValidateAnswer(value any, validators ...AnswerValidator) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

// PresentValidator rejects a missing answer.
func PresentValidator(value any) error {
	if value == nil {
		return errNoAnswer
	}
	return nil
}

// NonBlankValidator rejects the empty string. Other values pass.
func NonBlankValidator(value any) error {
	if s, ok := value.(string); ok && s == "" {
		return errBlankAnswer
	}
	return nil
}

// validators returns the checks an interactive answer to q must pass.
func (q Question) validators() []AnswerValidator {
	if q.AllowBlank {
		return []AnswerValidator{PresentValidator}
	}
	return []AnswerValidator{PresentValidator, NonBlankValidator}
}
