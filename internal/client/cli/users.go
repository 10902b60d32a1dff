package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/credkeeper/internal/common"
	pb "github.com/dmitrijs2005/credkeeper/internal/proto"
)

// users logs in with the password and prints either every user or the one
// named by -id, one per line as id, email and creation time.
func (a *App) users(ctx context.Context, args []string) error {
	fs := a.flagSet("users")
	addr := fs.String("a", a.config.ServerEndpointAddr, "server address")
	emailFlag := fs.String("email", "", "account email")
	id := fs.String("id", "", "show a single user")
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

	if _, err := c.Login(ctx, email, string(password)); err != nil {
		return err
	}

	var list []*pb.User
	if *id != "" {
		u, err := c.GetUser(ctx, *id)
		if err != nil {
			return err
		}
		list = []*pb.User{u}
	} else {
		list, err = c.ListUsers(ctx)
		if err != nil {
			return err
		}
	}

	for _, u := range list {
		fmt.Fprintf(a.out, "%s\t%s\t%s\n", u.GetId(), u.GetEmail(), u.GetCreatedAt().AsTime().Format(time.RFC3339))
	}
	return nil
}
