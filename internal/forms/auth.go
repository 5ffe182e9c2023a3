package forms

import "strings"

// LoginForm is the landing page sign-in card. Any non-empty pair signs in.
type LoginForm struct {
	Email    string
	Password string
	errors   Errors
}

// SetEmail updates the email and clears its error.
func (f *LoginForm) SetEmail(v string) {
	f.Email = v
	delete(f.errors, FieldEmail)
}

// SetPassword updates the password and clears its error.
func (f *LoginForm) SetPassword(v string) {
	f.Password = v
	delete(f.errors, FieldPassword)
}

// Submit reports whether the form may proceed to the simulated sign-in.
func (f *LoginForm) Submit() Errors {
	errs := Errors{}
	if f.Email == "" {
		errs[FieldEmail] = "Email is required"
	}
	if f.Password == "" {
		errs[FieldPassword] = "Password is required"
	}
	f.errors = errs
	if errs.Empty() {
		return nil
	}
	return errs
}

// Errors returns the messages from the last submit.
func (f *LoginForm) Errors() Errors {
	if f.errors == nil {
		return Errors{}
	}
	return f.errors
}

// RequestAccessForm is the request-access modal.
type RequestAccessForm struct {
	Email string
	err   string
}

// SetEmail updates the email and clears the error.
func (f *RequestAccessForm) SetEmail(v string) {
	f.Email = v
	f.err = ""
}

// Submit returns the validation message, or "" when the request can be sent.
func (f *RequestAccessForm) Submit() string {
	if f.Email == "" || !strings.Contains(f.Email, "@") {
		f.err = "Please enter a valid email address"
		return f.err
	}
	f.err = ""
	return ""
}

// Error is the message from the last submit.
func (f *RequestAccessForm) Error() string { return f.err }

// Reset clears the modal after the confirmation closes.
func (f *RequestAccessForm) Reset() {
	f.Email = ""
	f.err = ""
}
