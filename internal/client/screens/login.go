package screens

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/iudanet/umkmhub/internal/client/auth"
	"github.com/iudanet/umkmhub/internal/client/router"
	"github.com/iudanet/umkmhub/internal/validation"
)

// LoginRedirect sends a visitor who already has a session to the home screen
func (s *Screens) LoginRedirect() Result {
	if s.currentSession() != nil {
		return Result{Navigate: router.PathHome}
	}
	return Result{}
}

// SignIn signs in with email and password
func (s *Screens) SignIn(ctx context.Context, email, password string) Result {
	if _, err := s.deps.Accounts.SignIn(ctx, email, password); err != nil {
		return failure("Login Gagal: ", err)
	}
	return Result{Message: "Login Berhasil! Mengarahkan...", Navigate: router.PathHome}
}

// SignUp registers a new account and seeds the local profile with the
// entered name and email. A password mismatch never reaches the gateway.
func (s *Screens) SignUp(ctx context.Context, fullName, email, password, confirm string) Result {
	if _, err := s.deps.Accounts.SignUp(ctx, fullName, email, password, confirm); err != nil {
		if errors.Is(err, validation.ErrPasswordMismatch) {
			return Result{Err: err, Message: "Password dan Confirm Password tidak sama!"}
		}
		return failure("Daftar Gagal: ", err)
	}

	if err := s.deps.Profile.Seed(ctx, strings.TrimSpace(fullName), strings.TrimSpace(email)); err != nil {
		slog.Warn("failed to seed local profile", "error", err)
	}

	return Result{Message: "Pendaftaran berhasil! Silakan cek email untuk konfirmasi."}
}

// ResetPassword requests a password reset email
func (s *Screens) ResetPassword(ctx context.Context, email string) Result {
	if err := s.deps.Accounts.ResetPassword(ctx, email); err != nil {
		if errors.Is(err, auth.ErrEmailRequired) {
			return Result{Err: err, Message: "Masukkan email untuk reset password!"}
		}
		return failure("Gagal mengirim email reset: ", err)
	}
	return Result{Message: "Email reset password telah dikirim!"}
}

// SignOut ends the session. The local session is cleared even when the
// gateway call fails; that failure is still reported.
func (s *Screens) SignOut(ctx context.Context) Result {
	if err := s.deps.Accounts.SignOut(ctx); err != nil {
		return failure("Logout Gagal: ", err)
	}
	return Result{Navigate: router.PathLogin}
}
