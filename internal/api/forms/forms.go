// Package forms decodes and validates the application's HTML form
// submissions. Field-level messages are returned beside the offending
// field; form-level messages apply to the submission as a whole.
package forms

import (
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Errors carries per-field and form-level validation messages.
type Errors struct {
	Fields map[string]string
	Form   []string
}

func NewErrors() *Errors {
	return &Errors{Fields: make(map[string]string)}
}

func (e *Errors) AddField(field, message string) {
	if _, taken := e.Fields[field]; !taken {
		e.Fields[field] = message
	}
}

func (e *Errors) AddForm(message string) {
	e.Form = append(e.Form, message)
}

func (e *Errors) Any() bool {
	return len(e.Fields) > 0 || len(e.Form) > 0
}

// run validates v and maps rule violations to messages keyed by
// "<field>.<tag>", falling back to a "<field>" key.
func run(v interface{}, messages map[string]string) *Errors {
	errs := NewErrors()
	err := validate.Struct(v)
	if err == nil {
		return errs
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errs.AddForm("Invalid form fields.")
		return errs
	}

	for _, fieldErr := range validationErrs {
		field := fieldErr.Field()
		if msg, ok := messages[field+"."+fieldErr.Tag()]; ok {
			errs.AddField(field, msg)
			continue
		}
		if msg, ok := messages[field]; ok {
			errs.AddField(field, msg)
			continue
		}
		errs.AddField(field, "Invalid value.")
	}
	return errs
}

func formValue(r *http.Request, key string) string {
	return strings.TrimSpace(r.PostFormValue(key))
}

type LoginForm struct {
	Identifier string `form:"identifier" validate:"required,min=5,max=8"`
	Password   string `form:"password" validate:"required"`
}

func ParseLogin(r *http.Request) (*LoginForm, *Errors) {
	form := &LoginForm{
		Identifier: formValue(r, "identifier"),
		Password:   r.PostFormValue("password"),
	}
	errs := run(form, map[string]string{
		"identifier.required": "Personal ID or Username is required",
		"identifier.min":      "Identifier must be at least 5 characters long",
		"identifier.max":      "Identifier must be at most 8 characters long",
		"password.required":   "Password is required",
	})
	return form, errs
}

type PersonalIDForm struct {
	PersonalID string `form:"personalId" validate:"required,len=8"`
}

func ParsePersonalID(r *http.Request) (*PersonalIDForm, *Errors) {
	form := &PersonalIDForm{PersonalID: formValue(r, "personalId")}
	errs := run(form, map[string]string{
		"personalId.required": "Personal ID is required",
		"personalId.len":      "Personal Id must be exactly 8 characters long.",
	})
	return form, errs
}

type WorkstationChoiceForm struct {
	WorkstationID string `form:"workstationId" validate:"required"`
}

func ParseWorkstationChoice(r *http.Request) (*WorkstationChoiceForm, *Errors) {
	form := &WorkstationChoiceForm{WorkstationID: formValue(r, "workstationId")}
	errs := run(form, map[string]string{
		"workstationId.required": "Workstation Id is required",
	})
	return form, errs
}

type ReportForm struct {
	DateOfDay         string `form:"dateOfDay" validate:"required"`
	HourOfDay         string `form:"hourOfDay" validate:"required"`
	ReasonForDowntime string `form:"reasonForDowntime" validate:"required"`
	StorageLocation   string `form:"storageLocation"`
	Duration          int    `form:"duration" validate:"gt=0"`
	Details           string `form:"details"`
	WorkstationID     string `form:"workstationId" validate:"required"`
	WorkerID          string `form:"workerId" validate:"required"`
}

func ParseReport(r *http.Request) (*ReportForm, *Errors) {
	form := &ReportForm{
		DateOfDay:         formValue(r, "dateOfDay"),
		HourOfDay:         formValue(r, "hourOfDay"),
		ReasonForDowntime: formValue(r, "reasonForDowntime"),
		StorageLocation:   formValue(r, "storageLocation"),
		Details:           formValue(r, "details"),
		WorkstationID:     formValue(r, "workstationId"),
		WorkerID:          formValue(r, "workerId"),
	}

	// The zero-value Duration trips the gt rule too, so the parse-stage
	// message has to overwrite whatever the validator said.
	rawDuration := formValue(r, "duration")
	if rawDuration == "" {
		errs := run(form, reportMessages)
		errs.Fields["duration"] = "Duration is required"
		return form, errs
	}
	duration, err := strconv.Atoi(rawDuration)
	if err != nil {
		errs := run(form, reportMessages)
		errs.Fields["duration"] = "Duration must be a number"
		return form, errs
	}
	form.Duration = duration

	return form, run(form, reportMessages)
}

var reportMessages = map[string]string{
	"dateOfDay.required":         "Date of day is required",
	"hourOfDay.required":         "Hour of day is required",
	"reasonForDowntime.required": "Reason for downtime is required",
	"duration.gt":                "Duration must be a positive number",
	"workstationId.required":     "Workstation is required",
	"workerId.required":          "Worker is required",
}

type CreateUserForm struct {
	FirstName  string `form:"firstName" validate:"required"`
	LastName   string `form:"lastName" validate:"required"`
	PersonalID string `form:"personalId" validate:"required"`
	Username   string `form:"username" validate:"required"`
	Password   string `form:"password" validate:"required"`
	Role       string `form:"role" validate:"required"`
}

func ParseCreateUser(r *http.Request) (*CreateUserForm, *Errors) {
	form := &CreateUserForm{
		FirstName:  formValue(r, "firstName"),
		LastName:   formValue(r, "lastName"),
		PersonalID: formValue(r, "personalId"),
		Username:   formValue(r, "username"),
		Password:   r.PostFormValue("password"),
		Role:       formValue(r, "role"),
	}
	errs := run(form, map[string]string{
		"firstName.required":  "First name is required",
		"lastName.required":   "Last name is required",
		"personalId.required": "Personal ID is required",
		"username.required":   "Username is required",
		"password.required":   "Password is required",
		"role.required":       "Role is required",
	})
	return form, errs
}

type RoleForm struct {
	Name        string `form:"name" validate:"required"`
	DisplayName string `form:"displayName" validate:"required"`
	Description string `form:"description" validate:"omitempty,min=3,max=100"`
}

func ParseRole(r *http.Request) (*RoleForm, *Errors) {
	form := &RoleForm{
		Name:        formValue(r, "name"),
		DisplayName: formValue(r, "displayName"),
		Description: formValue(r, "description"),
	}
	return form, run(form, nameDescMessages)
}

type StatusForm struct {
	Name        string `form:"name" validate:"required"`
	DisplayName string `form:"displayName" validate:"required"`
	Description string `form:"description" validate:"omitempty,min=3,max=200"`
}

func ParseStatus(r *http.Request) (*StatusForm, *Errors) {
	form := &StatusForm{
		Name:        formValue(r, "name"),
		DisplayName: formValue(r, "displayName"),
		Description: formValue(r, "description"),
	}
	return form, run(form, nameDescMessages)
}

type WorkstationForm struct {
	Name        string `form:"name" validate:"required"`
	DisplayName string `form:"displayName" validate:"required"`
	Type        string `form:"type" validate:"required,oneof=Mobile Fixed"`
	Description string `form:"description" validate:"omitempty,min=3,max=100"`
}

func ParseWorkstation(r *http.Request) (*WorkstationForm, *Errors) {
	form := &WorkstationForm{
		Name:        formValue(r, "name"),
		DisplayName: formValue(r, "displayName"),
		Type:        formValue(r, "type"),
		Description: formValue(r, "description"),
	}
	messages := map[string]string{
		"name.required":        "Name is required",
		"displayName.required": "Display name is required",
		"type.required":        "Type is required",
		"type.oneof":           "Type must be Mobile or Fixed",
		"description.min":      "Description is too short",
		"description.max":      "Description is too long",
	}
	return form, run(form, messages)
}

var nameDescMessages = map[string]string{
	"name.required":        "Name is required",
	"displayName.required": "Display name is required",
	"description.min":      "Description is too short",
	"description.max":      "Description is too long",
}
