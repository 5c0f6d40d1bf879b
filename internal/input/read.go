package input

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// ReadFile reads a beam description. The format follows the extension:
// .yaml, .yml and .json are decoded as YAML (a superset of JSON), .xlsx as a
// spreadsheet.
func ReadFile(path string, logger *zap.Logger) (RawBeam, error) {
	var (
		raw RawBeam
		err error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		var f *os.File
		f, err = os.Open(path)
		if err != nil {
			return RawBeam{}, fmt.Errorf("open beam file: %w", err)
		}
		defer f.Close()
		raw, err = ReadYAML(f)
	case ".xlsx":
		raw, err = ReadXLSX(path)
	default:
		return RawBeam{}, fmt.Errorf("unsupported beam file format %q", filepath.Ext(path))
	}
	if err != nil {
		return RawBeam{}, fmt.Errorf("%s: %w", path, err)
	}

	if raw.Name == "" {
		raw.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	logger.Debug("read beam file",
		zap.String("path", path),
		zap.Float64("length", raw.Length),
		zap.Int("loads", len(raw.Loads)),
		zap.Int("supports", len(raw.Supports)),
	)
	return raw, nil
}

// ReadYAML decodes a beam from YAML or JSON
func ReadYAML(r io.Reader) (RawBeam, error) {
	var raw RawBeam
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return RawBeam{}, valueError("beam", -1, "empty beam file")
		}
		var te *yaml.TypeError
		if errors.As(err, &te) {
			return RawBeam{}, typeError("beam", -1, "%s", strings.Join(te.Errors, "; "))
		}
		var ve *ValidationError
		if errors.As(err, &ve) {
			return RawBeam{}, err
		}
		return RawBeam{}, fmt.Errorf("parse beam: %w", err)
	}
	return raw, nil
}

// ReadXLSX reads the first sheet of a workbook. Each row is
//
//	kind | position | magnitude | case
//
// where kind is length, load or support. For the length row the second
// column holds the beam length. A leading header row is skipped.
func ReadXLSX(path string) (RawBeam, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return RawBeam{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return RawBeam{}, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	raw := RawBeam{Name: sheet}
	haveLength := false
	for i, row := range rows {
		rowNum := i + 1
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}

		kind := strings.ToLower(strings.TrimSpace(row[0]))
		if i == 0 && kind == "kind" {
			continue
		}

		switch kind {
		case "length":
			if len(row) < 2 {
				return RawBeam{}, valueError("row", rowNum, "length row needs a value")
			}
			raw.Length, err = cellNumber(row[1], rowNum)
			if err != nil {
				return RawBeam{}, err
			}
			haveLength = true

		case "load", "support":
			if len(row) < 3 {
				return RawBeam{}, valueError("row", rowNum, "%s row must have position and magnitude", kind)
			}
			var force RawForce
			if force.Position, err = cellNumber(row[1], rowNum); err != nil {
				return RawBeam{}, err
			}
			if force.Magnitude, err = cellNumber(row[2], rowNum); err != nil {
				return RawBeam{}, err
			}
			if len(row) > 3 {
				force.Case = strings.TrimSpace(row[3])
			}
			if kind == "load" {
				raw.Loads = append(raw.Loads, force)
			} else {
				raw.Supports = append(raw.Supports, force)
			}

		default:
			return RawBeam{}, valueError("row", rowNum, "unknown row kind %q", row[0])
		}
	}

	if !haveLength {
		return RawBeam{}, valueError("length", -1, "workbook has no length row")
	}
	return raw, nil
}

func cellNumber(s string, row int) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, typeError("row", row, "%q is not numeric", s)
	}
	return v, nil
}
