// Package importer loads lettings and profiles from an XLSX workbook.
package importer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/oclettings/oc-lettings-site/internal/app/model"
	"github.com/oclettings/oc-lettings-site/internal/app/repository"
	"github.com/oclettings/oc-lettings-site/internal/app/service"
	apperrors "github.com/oclettings/oc-lettings-site/internal/errors"
	"github.com/oclettings/oc-lettings-site/pkg/logger"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

const (
	LettingsSheet = "lettings"
	ProfilesSheet = "profiles"
)

var (
	LettingsColumns = []string{"title", "number", "street", "city", "state", "zip_code", "country_iso_code"}
	ProfilesColumns = []string{"username", "email", "first_name", "last_name", "favorite_city"}
)

var ErrHeaderMismatch = errors.New("unexpected header row")

// RowError reports the first row that could not be imported. Row is the
// 1-based row number as shown by spreadsheet applications.
type RowError struct {
	Sheet string
	Row   int
	Err   error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("sheet %q row %d: %v", e.Sheet, e.Row, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// Result counts the records created by an import.
type Result struct {
	Lettings int
	Accounts int
	Profiles int
}

type Importer struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Importer {
	return &Importer{db: db}
}

// ImportFile reads both sheets of the workbook at path. Every row is stored
// in its own transaction; the first malformed row stops the import and rows
// before it stay committed. A missing sheet is skipped.
func (im *Importer) ImportFile(path string) (*Result, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	result := &Result{}

	lettingRows, err := readSheet(f, LettingsSheet, LettingsColumns)
	if err != nil {
		return result, err
	}
	for i, row := range lettingRows {
		if blank(row) {
			continue
		}
		if err := im.importLetting(row); err != nil {
			return result, &RowError{Sheet: LettingsSheet, Row: i + 2, Err: err}
		}
		result.Lettings++
	}

	profileRows, err := readSheet(f, ProfilesSheet, ProfilesColumns)
	if err != nil {
		return result, err
	}
	for i, row := range profileRows {
		if blank(row) {
			continue
		}
		created, err := im.importProfile(row)
		if err != nil {
			return result, &RowError{Sheet: ProfilesSheet, Row: i + 2, Err: err}
		}
		if created {
			result.Accounts++
		}
		result.Profiles++
	}

	logger.Info("XLSX import completed", map[string]interface{}{
		"file":     path,
		"lettings": result.Lettings,
		"accounts": result.Accounts,
		"profiles": result.Profiles,
	})
	return result, nil
}

// readSheet returns the data rows of sheet, padded to len(columns). Blank
// rows keep their slot so row numbers stay aligned.
func readSheet(f *excelize.File, sheet string, columns []string) ([][]string, error) {
	idx, err := f.GetSheetIndex(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to look up sheet %q: %w", sheet, err)
	}
	if idx < 0 {
		logger.Warn("Sheet not found, skipping", map[string]interface{}{
			"sheet": sheet,
		})
		return nil, nil
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows of %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := normalize(rows[0], len(columns))
	for i, name := range columns {
		if !strings.EqualFold(header[i], name) {
			return nil, &RowError{
				Sheet: sheet,
				Row:   1,
				Err:   fmt.Errorf("%w: column %d is %q, want %q", ErrHeaderMismatch, i+1, header[i], name),
			}
		}
	}

	data := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		data = append(data, normalize(row, len(columns)))
	}
	return data, nil
}

func normalize(row []string, width int) []string {
	out := make([]string, width)
	for i := 0; i < width && i < len(row); i++ {
		out[i] = strings.TrimSpace(row[i])
	}
	return out
}

func blank(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}

func (im *Importer) importLetting(row []string) error {
	return im.db.Transaction(func(tx *gorm.DB) error {
		lettings := service.NewLettingService(repository.NewLettingRepository(tx))
		_, err := lettings.CreateLetting(row[0], model.AddressInput{
			Number:         row[1],
			Street:         row[2],
			City:           row[3],
			State:          row[4],
			ZipCode:        row[5],
			CountryISOCode: row[6],
		})
		return err
	})
}

// importProfile creates the profile for row, opening the account first when
// the username is new. Imported accounts get a random password.
func (im *Importer) importProfile(row []string) (bool, error) {
	created := false
	err := im.db.Transaction(func(tx *gorm.DB) error {
		userRepo := repository.NewUserRepository(tx)
		accounts := service.NewAccountService(userRepo)
		profiles := service.NewProfileService(repository.NewProfileRepository(tx), userRepo)

		username := row[0]
		if _, err := accounts.GetUser(username); err != nil {
			if !errors.Is(err, apperrors.ErrNotFound) {
				return err
			}
			if _, err := accounts.CreateUser(service.UserInput{
				Username:  username,
				Email:     row[1],
				FirstName: row[2],
				LastName:  row[3],
				Password:  uuid.NewString(),
			}); err != nil {
				return err
			}
			created = true
		}

		_, err := profiles.CreateProfile(username, row[4])
		return err
	})
	if err != nil {
		return false, err
	}
	return created, nil
}
