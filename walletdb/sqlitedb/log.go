// Copyright (c) 2023-2025 The webcash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sqlitedb

import (
	"os"

	"github.com/webcashsuite/wcwallet/walletdb"
	"github.com/webcashsuite/wcwallet/wcerr"
)

// fileLog implements walletdb.RecoveryLog as a plain append-only file.
// Records are newline-delimited; each append is synced before returning
// so a crash never loses an acknowledged record.
type fileLog struct {
	f *os.File
}

// openLog opens (creating if necessary) the recovery log at path.
func openLog(path string) (walletdb.RecoveryLog, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, err
	}
	return &fileLog{f: f}, nil
}

func (l *fileLog) Append(record []byte) error {
	if l.f == nil {
		return wcerr.New(wcerr.ErrDbClosed, "recovery log is closed", nil)
	}
	buf := make([]byte, 0, len(record)+1)
	buf = append(buf, record...)
	buf = append(buf, '\n')
	if _, err := l.f.Write(buf); err != nil {
		return err
	}
	return l.f.Sync()
}

func (l *fileLog) Close() error {
	if l.f == nil {
		return wcerr.New(wcerr.ErrDbClosed, "recovery log is closed", nil)
	}
	err := l.f.Close()
	l.f = nil
	return err
}
