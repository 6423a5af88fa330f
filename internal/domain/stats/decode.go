package stats

import (
	"encoding/json"
	"fmt"
	"math"
)

// DecodeRecords zips upstream result-set headers with each row and decodes the
// resulting columns into typed records.
func DecodeRecords(headers []string, rows [][]any) ([]RawSeasonRecord, error) {
	records := make([]RawSeasonRecord, 0, len(rows))
	for i, row := range rows {
		if len(row) != len(headers) {
			return nil, &SourceError{Reason: fmt.Sprintf("row %d has %d values for %d headers", i, len(row), len(headers))}
		}
		columns := make(map[string]any, len(headers))
		for j, h := range headers {
			columns[h] = row[j]
		}
		rec, err := DecodeRecord(columns)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// DecodeRecord converts an untyped column map into a RawSeasonRecord.
// Every required column must be present. A null numeric column decodes as 0,
// since the source reports null for stats it did not track in older seasons,
// except GP which must always be a whole non-negative number.
func DecodeRecord(columns map[string]any) (RawSeasonRecord, error) {
	for _, field := range RequiredFields {
		if _, ok := columns[field]; !ok {
			return RawSeasonRecord{}, missingField(field)
		}
	}

	d := decoder{columns: columns}
	rec := RawSeasonRecord{
		SeasonID:         d.str(FieldSeasonID, true),
		TeamAbbreviation: d.str(FieldTeamAbbreviation, false),
		GP:               d.count(FieldGP, true),
		GS:               d.count(FieldGS, false),
		MIN:              d.num(FieldMIN),
		FGM:              d.num(FieldFGM),
		FGA:              d.num(FieldFGA),
		FGPct:            d.num(FieldFGPct),
		FG3M:             d.num(FieldFG3M),
		FG3A:             d.num(FieldFG3A),
		FG3Pct:           d.num(FieldFG3Pct),
		FTM:              d.num(FieldFTM),
		FTA:              d.num(FieldFTA),
		FTPct:            d.num(FieldFTPct),
		REB:              d.num(FieldREB),
		AST:              d.num(FieldAST),
		STL:              d.num(FieldSTL),
		BLK:              d.num(FieldBLK),
		TOV:              d.num(FieldTOV),
		PTS:              d.num(FieldPTS),
	}
	if d.err != nil {
		return RawSeasonRecord{}, d.err
	}
	return rec, nil
}

// decoder keeps the first conversion failure so field extraction reads linearly.
type decoder struct {
	columns map[string]any
	err     *SourceError
}

func (d *decoder) fail(err *SourceError) {
	if d.err == nil {
		d.err = err
	}
}

func (d *decoder) str(field string, required bool) string {
	switch v := d.columns[field].(type) {
	case string:
		if required && v == "" {
			d.fail(invalidField(field, `""`))
		}
		return v
	case nil:
		if required {
			d.fail(invalidField(field, nil))
		}
		return ""
	default:
		d.fail(invalidField(field, v))
		return ""
	}
}

func (d *decoder) num(field string) float64 {
	raw := d.columns[field]
	if raw == nil {
		return 0
	}
	v, ok := toFloat(raw)
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		d.fail(invalidField(field, raw))
		return 0
	}
	return v
}

func (d *decoder) count(field string, required bool) int {
	raw := d.columns[field]
	if raw == nil {
		if required {
			d.fail(invalidField(field, nil))
		}
		return 0
	}
	v, ok := toFloat(raw)
	if !ok || v < 0 || v != math.Trunc(v) || math.IsInf(v, 0) {
		d.fail(invalidField(field, raw))
		return 0
	}
	return int(v)
}

func toFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
