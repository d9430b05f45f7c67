package validator

import (
	"reflect"
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"AL", "SL", "CL", "L"}
	if !IsInSlice("AL", slice) {
		t.Errorf("IsInSlice('AL') = false, want true")
	}
	if IsInSlice("OFF", slice) {
		t.Errorf("IsInSlice('OFF') = true, want false")
	}
}

func TestSplitList(t *testing.T) {
	cases := []struct {
		input string
		want  []string
	}{
		{"csa1,csa2", []string{"csa1", "csa2"}},
		{" csa1 , csa2 ", []string{"csa1", "csa2"}},
		{"csa1,,csa2,", []string{"csa1", "csa2"}},
		{"", nil},
		{" , ", nil},
	}
	for _, c := range cases {
		got := SplitList(c.input)
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("SplitList(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "logins", Message: "required"},
		{Field: "week", Message: "must be positive"},
	}
	got := errs.Error()
	want := "logins: required; week: must be positive"
	if got != want {
		t.Errorf("ValidationErrors.Error() = %q, want %q", got, want)
	}
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "logins", Message: "required"},
		{Field: "week", Message: "must be positive"},
	}
	got := errs.ToMap()
	want := map[string]string{"logins": "required", "week": "must be positive"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ValidationErrors.ToMap() = %v, want %v", got, want)
	}
}
