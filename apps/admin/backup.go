package main

import (
	"os"

	"github.com/trezcool/kitivo/storage/kvstore"
)

func (cli *commandLine) backup(path string) error {
	snap, err := cli.store.Backup()
	if err != nil {
		return err
	}
	data, err := kvstore.EncodeSnapshot(snap)
	if err != nil {
		return err
	}
	if err = os.WriteFile(path, data, 0o600); err != nil {
		return err
	}
	logger.Printf("snapshot %s written to %s", snap.ID, path)
	return nil
}

func (cli *commandLine) restore(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	snap, err := kvstore.DecodeSnapshot(data)
	if err != nil {
		return err
	}
	if err = cli.store.Restore(snap); err != nil {
		return err
	}
	logger.Printf("snapshot %s restored from %s", snap.ID, path)
	return nil
}
