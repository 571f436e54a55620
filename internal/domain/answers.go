package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"pagecraft/internal/domain/specjson"
)

// Goal is the conversion goal of the landing page.
type Goal string

const (
	GoalLeads      Goal = "Leads"
	GoalSales      Goal = "Sales"
	GoalNewsletter Goal = "Newsletter"
)

// Tone is the writing voice requested by the user.
type Tone string

const (
	ToneFriendly     Tone = "Friendly"
	ToneProfessional Tone = "Professional"
	ToneBold         Tone = "Bold"
)

// WizardAnswers is the questionnaire submitted for one generation request.
type WizardAnswers struct {
	BusinessName string            `json:"businessName" validate:"min=2,max=60"`
	Product      string            `json:"product" validate:"min=3,max=80"`
	Audience     string            `json:"audience" validate:"required,min=3,max=80"`
	Goal         Goal              `json:"goal" validate:"required,oneof=Leads Sales Newsletter"`
	Tone         Tone              `json:"tone" validate:"required,oneof=Friendly Professional Bold"`
	Industry     specjson.Industry `json:"industry,omitempty" validate:"omitempty,oneof=saas ecommerce restaurant healthcare education finance creative consulting technology other"`
	PrimaryColor string            `json:"primaryColor" validate:"required,hexcolor6"`
	ReferenceURL string            `json:"referenceUrl,omitempty" validate:"omitempty,http_url"`
	LogoURL      string            `json:"logoUrl,omitempty" validate:"omitempty,http_url"`
}

var answersValidator = specjson.NewValidator()

// Normalize trims surrounding whitespace from every free-text answer.
func (a *WizardAnswers) Normalize() {
	if a == nil {
		return
	}
	a.BusinessName = strings.TrimSpace(a.BusinessName)
	a.Product = strings.TrimSpace(a.Product)
	a.Audience = strings.TrimSpace(a.Audience)
	a.Industry = specjson.Industry(strings.ToLower(strings.TrimSpace(string(a.Industry))))
	a.PrimaryColor = strings.TrimSpace(a.PrimaryColor)
	a.ReferenceURL = strings.TrimSpace(a.ReferenceURL)
	a.LogoURL = strings.TrimSpace(a.LogoURL)
}

// Validate rejects answers that cannot be turned into a prompt. A missing
// business name or product is reported as ErrMissingRequiredAnswers before
// any bound is checked.
func (a WizardAnswers) Validate() error {
	var missing []string
	if strings.TrimSpace(a.BusinessName) == "" {
		missing = append(missing, "businessName")
	}
	if strings.TrimSpace(a.Product) == "" {
		missing = append(missing, "product")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingRequiredAnswers, strings.Join(missing, ", "))
	}

	err := answersValidator.Struct(a)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidAnswers, strings.Join(fields, ", "))
}
