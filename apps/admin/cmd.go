package main

import (
	"errors"
	"flag"
	"fmt"
	"syscall"

	"golang.org/x/term"

	"github.com/trezcool/kitivo/core/settings"
	"github.com/trezcool/kitivo/core/user"
	"github.com/trezcool/kitivo/storage/kvstore"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	store       *kvstore.Store
	usrRepo     user.Repository
	usrSvc      *user.Service
	settingsSvc *settings.Service
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  roster approve|revoke MATRIC              - manage the approved matric roster")
	fmt.Println("  maintenance on|off                        - toggle maintenance mode")
	fmt.Println("  backup -out FILE                          - write a snapshot of the store to FILE")
	fmt.Println("  restore -in FILE                          - replace the store with the snapshot in FILE")
	fmt.Println("  resetpassword -username USERNAME|EMAIL    - reset a user's password")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	backupCmd := flag.NewFlagSet("backup", flag.ExitOnError)
	backupOut := backupCmd.String("out", "", "Path the snapshot is written to.")

	restoreCmd := flag.NewFlagSet("restore", flag.ExitOnError)
	restoreIn := restoreCmd.String("in", "", "Path of the snapshot to restore.")

	resetPasswordCmd := flag.NewFlagSet("resetpassword", flag.ExitOnError)
	resetPasswordUname := resetPasswordCmd.String("username", "", "The user's username, email or matric number. The password will be prompted next.")

	switch args[1] {
	case "roster":
		if len(args) < 4 {
			cli.printUsage()
			return errHelp
		}
		return cli.roster(args[2], args[3])
	case "maintenance":
		if len(args) < 3 {
			cli.printUsage()
			return errHelp
		}
		return cli.maintenance(args[2])
	case "backup":
		if err := backupCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *backupOut == "" {
			backupCmd.Usage()
			return errHelp
		}
		return cli.backup(*backupOut)
	case "restore":
		if err := restoreCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *restoreIn == "" {
			restoreCmd.Usage()
			return errHelp
		}
		return cli.restore(*restoreIn)
	case "resetpassword":
		if err := resetPasswordCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *resetPasswordUname == "" {
			resetPasswordCmd.Usage()
			return errHelp
		}
		fmt.Print("Enter password:")
		pwd, err := readPasswordFunc(syscall.Stdin)
		fmt.Println()
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			resetPasswordCmd.Usage()
			return errHelp
		}
		return cli.resetPassword(*resetPasswordUname, string(pwd))
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) roster(action, matric string) error {
	switch action {
	case "approve":
		return cli.usrSvc.ApproveMatric(matric)
	case "revoke":
		return cli.usrSvc.RevokeMatric(matric)
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) maintenance(state string) error {
	switch state {
	case "on", "off":
		_, err := cli.settingsSvc.SetMaintenanceMode(state == "on")
		return err
	default:
		cli.printUsage()
		return errHelp
	}
}
