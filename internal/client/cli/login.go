package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/credkeeper/internal/common"
)

func (a *App) login(ctx context.Context, args []string) error {
	fs := a.flagSet("login")
	addr := fs.String("a", a.config.ServerEndpointAddr, "server address")
	emailFlag := fs.String("email", "", "account email")
	if err := parse(fs, args); err != nil {
		return err
	}

	email, err := a.email(*emailFlag)
	if err != nil {
		return err
	}
	password, err := getSecret(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	c, err := a.dial(*addr)
	if err != nil {
		return err
	}
	defer c.Close()

	token, err := c.Login(ctx, email, string(password))
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, token)
	return nil
}

func (a *App) biometricLogin(ctx context.Context, args []string) error {
	fs := a.flagSet("biometric-login")
	addr := fs.String("a", a.config.ServerEndpointAddr, "server address")
	if err := parse(fs, args); err != nil {
		return err
	}

	key, err := getSecret(a.reader, "Enter biometric key", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(key)

	c, err := a.dial(*addr)
	if err != nil {
		return err
	}
	defer c.Close()

	token, err := c.LoginWithBiometric(ctx, string(key))
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, token)
	return nil
}

// setBiometric logs in with the password and then replaces the account's
// biometric key.
func (a *App) setBiometric(ctx context.Context, args []string) error {
	fs := a.flagSet("set-biometric")
	addr := fs.String("a", a.config.ServerEndpointAddr, "server address")
	emailFlag := fs.String("email", "", "account email")
	if err := parse(fs, args); err != nil {
		return err
	}

	email, err := a.email(*emailFlag)
	if err != nil {
		return err
	}
	password, err := getSecret(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	key, err := getSecret(a.reader, "Enter new biometric key", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(key)

	c, err := a.dial(*addr)
	if err != nil {
		return err
	}
	defer c.Close()

	if _, err := c.Login(ctx, email, string(password)); err != nil {
		return err
	}

	user, err := c.UpdateBiometric(ctx, string(key))
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "biometric key updated for %s\n", user.GetEmail())
	return nil
}
