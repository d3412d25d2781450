// Command client is a small terminal stand-in for the web presentation
// layer: it wires a view model, signs in, lists the submitted applications
// and logs out again.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/hirebase/hirebase-go/internal/client/api"
	"github.com/hirebase/hirebase-go/internal/client/viewmodel"
)

func main() {
	server := flag.String("server", "http://localhost:3000", "server base URL")
	flag.Parse()

	client, err := api.NewClient(*server)
	if err != nil {
		fmt.Fprintln(os.Stderr, "client setup failed:", err)
		os.Exit(1)
	}

	vm := viewmodel.New(client)
	vm.OnAuthChange(func(signedIn bool) {
		if signedIn {
			fmt.Println("-- signed in")
		} else {
			fmt.Println("-- signed out")
		}
	})
	vm.OnChange(func(vm *viewmodel.ViewModel) {
		if vm.CurrentError() != 0 {
			fmt.Printf("-- error state: %d\n", vm.CurrentError())
		}
	})

	username, password, err := promptCredentials()
	if err != nil {
		fmt.Fprintln(os.Stderr, "reading credentials:", err)
		os.Exit(1)
	}

	ctx := context.Background()

	ok, err := vm.Login(ctx, username, password)
	if err != nil {
		fmt.Fprintln(os.Stderr, "login:", err)
		os.Exit(1)
	}
	if !ok {
		fmt.Fprintln(os.Stderr, "login failed")
		os.Exit(1)
	}
	fmt.Printf("welcome %s %s <%s>\n", vm.FirstName(), vm.LastName(), vm.Email())

	applications := vm.ListAllApplications(ctx)
	if len(applications) == 0 {
		fmt.Println("no applications submitted")
	}
	for _, app := range applications {
		fmt.Printf("application %d: person %d, status %s, submitted %s\n",
			app.ApplicationID, app.PersonID, app.Status, app.ApplicationDate.Format("2006-01-02"))
	}

	if !vm.Logout(ctx) {
		fmt.Fprintln(os.Stderr, "logout not confirmed by server; still signed in locally")
		os.Exit(1)
	}
}

func promptCredentials() (string, string, error) {
	reader := bufio.NewReader(os.Stdin)

	fmt.Print("username: ")
	username, err := reader.ReadString('\n')
	if err != nil {
		return "", "", err
	}

	fmt.Print("password: ")
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", "", err
	}

	return strings.TrimSpace(username), string(password), nil
}
