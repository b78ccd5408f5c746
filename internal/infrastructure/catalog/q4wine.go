// Package catalog registers created prefixes in Q4Wine's local database.
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/Tatsh/mkwineprefix/internal/pkg/filesystem"
	"github.com/Tatsh/mkwineprefix/internal/ports"
)

// runString is the run template Q4Wine expects for every prefix row. The
// trailing space before the closing quote is part of the contract.
const runString = `%CONSOLE_BIN% %CONSOLE_ARGS% %ENV_BIN% %ENV_ARGS% /bin/sh -c ` +
	`"%WORK_DIR% %SET_NICE% %WINE_BIN% %VIRTUAL_DESKTOP% %PROGRAM_BIN% %PROGRAM_ARGS% 2>&1 "`

// mountPoint is the fixed Windows drive letter for the virtual drive.
const mountPoint = "D:"

type defaultIcon struct {
	args   string
	exec   string
	icon   string
	desc   string
	folder string
	name   string
}

// q4wineDefaultIcons are the stock shortcuts every new prefix receives. The
// literal content is a compatibility contract with Q4Wine.
var q4wineDefaultIcons = []defaultIcon{
	{"", "control.exe", "control", "Wine control panel", "system", "Control Panel"},
	{"", "eject.exe", "eject", "Wine CD eject tool", "system", "Eject"},
	{"", "explorer.exe", "explorer", "Browse the files in the virtual Wine Drive", "system", "Explorer"},
	{"", "iexplore.exe", "iexplore", "Wine internet browser", "system", "Internet Explorer"},
	{"", "notepad.exe", "notepad", "Wine notepad text editor", "system", "Notepad"},
	{"", "oleview.exe", "oleview", "Wine OLE/COM object viewer", "system", "OLE Viewer"},
	{"", "regedit.exe", "regedit", "Wine registry editor", "system", "Registry Editor"},
	{"", "taskmgr.exe", "taskmgr", "Wine task manager", "system", "Task Manager"},
	{"", "uninstaller.exe", "uninstaller", "Uninstall Windows programs under Wine properly", "system", "Uninstaller"},
	{"", "winecfg.exe", "winecfg", "Configure the general settings for Wine", "system", "Configuration"},
	{"", "wineconsole", "wineconsole", "Wineconsole is similar to wine command wcmd", "system", "Console"},
	{"", "winemine.exe", "winemine", "Wine sweeper game", "system", "Winemine"},
	{"", "wordpad.exe", "wordpad", "Wine wordpad text editor", "system", "WordPad"},
}

// q4wineDefaultDirs are the shortcut categories seeded for a new prefix.
var q4wineDefaultDirs = []string{"system", "autostart", "import"}

// Q4WineStore inserts prefix, dir and icon rows into Q4Wine's generic.dat.
type Q4WineStore struct {
	path   string
	logger ports.Logger
}

// NewQ4WineStore points at the platform-standard Q4Wine database location.
func NewQ4WineStore(logger ports.Logger) *Q4WineStore {
	return &Q4WineStore{
		path:   filepath.Join(filesystem.UserConfigDir(), "q4wine", "db", "generic.dat"),
		logger: logger,
	}
}

// NewQ4WineStoreAt uses an explicit database path.
func NewQ4WineStoreAt(path string, logger ports.Logger) *Q4WineStore {
	return &Q4WineStore{path: path, logger: logger}
}

// Register implements ports.CatalogStore. When the database file is absent
// the prefix is simply not catalogued; that is not an error.
func (s *Q4WineStore) Register(ctx context.Context, name, target string) error {
	if _, err := os.Stat(s.path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	s.logger.Debug("Adding this prefix to Q4Wine.", nil)

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO prefix (name, path, mountpoint_windrive, run_string, version_id) VALUES (?, ?, ?, ?, 1)`,
		name, target, mountPoint, runString)
	if err != nil {
		return err
	}
	prefixID, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.logger.Debug("Q4Wine prefix ID", map[string]interface{}{"id": prefixID})

	for _, dir := range q4wineDefaultDirs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO dir (name, prefix_id) VALUES (?, ?)`, dir, prefixID); err != nil {
			return err
		}
	}
	for _, icon := range q4wineDefaultIcons {
		var args interface{}
		if icon.args != "" {
			args = icon.args
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO icon (cmdargs, "exec", icon_path, "desc", dir_id, name, prefix_id, nice)
			 VALUES (?, ?, ?, ?, (SELECT id FROM dir WHERE name = ? AND prefix_id = ?), ?, ?, 0)`,
			args, icon.exec, icon.icon, icon.desc, icon.folder, prefixID, icon.name, prefixID); err != nil {
			return err
		}
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM logging WHERE prefix_id = ?`, prefixID); err != nil {
		return err
	}
	return tx.Commit()
}

var _ ports.CatalogStore = (*Q4WineStore)(nil)
