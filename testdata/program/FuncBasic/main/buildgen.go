//go:build buildgen

package main

import (
	"errors"

	"github.com/sublee/buildgen"
)

type Account struct {
	Email string
	Quota int
}

func openAccount(email string, quota int) (Account, error) {
	if email == "" {
		return Account{}, errors.New("email required")
	}
	return Account{Email: email, Quota: quota}, nil
}

var OpenAccount = buildgen.Func(openAccount, nil,
	buildgen.Name("AccountOpener"),
)
