package auth

import (
	"context"
	"errors"
	"testing"

	"campussync/internal/apperr"
	"campussync/internal/session"
)

type fakeCreds struct {
	admins   map[string]Credential
	students map[string]Credential
	faculty  map[string]Credential
	err      error
}

func (f *fakeCreds) lookup(table map[string]Credential, key string) (Credential, error) {
	if f.err != nil {
		return Credential{}, f.err
	}
	c, ok := table[key]
	if !ok {
		return Credential{}, ErrNoAccount
	}
	return c, nil
}

func (f *fakeCreds) AdminByUsername(_ context.Context, u string) (Credential, error) {
	return f.lookup(f.admins, u)
}
func (f *fakeCreds) StudentByEmail(_ context.Context, e string) (Credential, error) {
	return f.lookup(f.students, e)
}
func (f *fakeCreds) FacultyByEmail(_ context.Context, e string) (Credential, error) {
	return f.lookup(f.faculty, e)
}

func mustHash(t *testing.T, plain string) string {
	t.Helper()
	h, err := HashPassword(plain)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	return h
}

func TestLoginMatchYieldsExactPrincipal(t *testing.T) {
	creds := &fakeCreds{
		admins:   map[string]Credential{"root": {ID: 1, Hash: mustHash(t, "hunter2")}},
		students: map[string]Credential{"a@campus.edu": {ID: 42, Hash: mustHash(t, "pw")}},
		faculty:  map[string]Credential{"f@campus.edu": {ID: 7, Hash: mustHash(t, "chalk")}},
	}
	svc := NewService(creds)

	cases := []struct {
		name string
		call func() (session.Principal, error)
		want session.Principal
	}{
		{"admin", func() (session.Principal, error) {
			return svc.LoginAdmin(context.Background(), "root", "hunter2")
		}, session.Principal{Role: session.RoleAdmin, ID: 1}},
		{"student", func() (session.Principal, error) {
			return svc.LoginStudent(context.Background(), "a@campus.edu", "pw")
		}, session.Principal{Role: session.RoleStudent, ID: 42}},
		{"faculty", func() (session.Principal, error) {
			return svc.LoginFaculty(context.Background(), "f@campus.edu", "chalk")
		}, session.Principal{Role: session.RoleFaculty, ID: 7}},
	}
	for _, tc := range cases {
		got, err := tc.call()
		if err != nil {
			t.Errorf("%s: unexpected error %v", tc.name, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%s: principal = %+v, want %+v", tc.name, got, tc.want)
		}
	}
}

func TestLoginMismatchNeverYieldsPrincipal(t *testing.T) {
	creds := &fakeCreds{
		admins: map[string]Credential{"root": {ID: 1, Hash: mustHash(t, "hunter2")}},
	}
	svc := NewService(creds)

	cases := []struct {
		name               string
		username, password string
	}{
		{"wrong password", "root", "hunter3"},
		{"unknown user", "nobody", "hunter2"},
		{"empty password", "root", ""},
	}
	for _, tc := range cases {
		p, err := svc.LoginAdmin(context.Background(), tc.username, tc.password)
		if !errors.Is(err, apperr.ErrAuthFailed) {
			t.Errorf("%s: err = %v, want ErrAuthFailed", tc.name, err)
		}
		if p != (session.Principal{}) {
			t.Errorf("%s: got principal %+v from failed login", tc.name, p)
		}
	}
}

func TestLoginStorageFailureIsNotAuthFailure(t *testing.T) {
	svc := NewService(&fakeCreds{err: apperr.ErrStorage})

	_, err := svc.LoginStudent(context.Background(), "a@campus.edu", "pw")
	if errors.Is(err, apperr.ErrAuthFailed) {
		t.Fatalf("storage failure reported as bad credentials: %v", err)
	}
	if !errors.Is(err, apperr.ErrStorage) {
		t.Fatalf("err = %v, want ErrStorage", err)
	}
}

func TestPasswordHashRoundtrip(t *testing.T) {
	hash := mustHash(t, "s3cret")
	if hash == "s3cret" {
		t.Fatal("hash equals plaintext")
	}
	if !CheckPassword(hash, "s3cret") {
		t.Error("CheckPassword rejected the correct password")
	}
	if CheckPassword(hash, "S3cret") {
		t.Error("CheckPassword accepted a wrong password")
	}
}
