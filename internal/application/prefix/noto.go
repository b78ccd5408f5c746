package prefix

import (
	"encoding/hex"

	"github.com/Tatsh/mkwineprefix/internal/domain"
)

const (
	fontSubstitutesKey = `HKLM\Software\Microsoft\Windows NT\CurrentVersion\FontSubstitutes`
	windowMetricsKey   = `HKCU\Control Panel\Desktop\WindowMetrics`

	notoFaceName = "Noto Sans"
)

// notoFontReplacements are the stock face names remapped to Noto Sans.
// Consumers of FontSubstitutes are not order-sensitive; only full coverage
// matters.
var notoFontReplacements = map[string]struct{}{
	"Arial Baltic,186":           {},
	"Arial CE,238":               {},
	"Arial CYR,204":              {},
	"Arial Greek,161":            {},
	"Arial TUR,162":              {},
	"Courier New Baltic,186":     {},
	"Courier New CE,238":         {},
	"Courier New CYR,204":        {},
	"Courier New Greek,161":      {},
	"Courier New TUR,162":        {},
	"Helv":                       {},
	"Helvetica":                  {},
	"MS Shell Dlg":               {},
	"MS Shell Dlg 2":             {},
	"MS Sans Serif":              {},
	"Segoe UI":                   {},
	"System":                     {},
	"Tahoma":                     {},
	"Times":                      {},
	"Times New Roman Baltic,186": {},
	"Times New Roman CE,238":     {},
	"Times New Roman CYR,204":    {},
	"Times New Roman Greek,161":  {},
	"Times New Roman TUR,162":    {},
	"Tms Rmn":                    {},
	"Verdana":                    {},
}

// notoMetricsEntries are the WindowMetrics UI elements that receive a
// LOGFONTW binary value. Caption alone is written bold.
var notoMetricsEntries = map[string]struct{}{
	"Caption":   {},
	"Icon":      {},
	"Menu":      {},
	"Message":   {},
	"SmCaption": {},
	"Status":    {},
}

// notoEdits returns the registry edits switching the prefix's stock fonts to
// Noto Sans: one REG_SZ substitution per replaced face name and one
// REG_BINARY LOGFONTW per WindowMetrics entry.
func notoEdits(env []string) ([]domain.InvocationStep, error) {
	var steps []domain.InvocationStep
	for fontName := range notoFontReplacements {
		steps = append(steps, regAdd(env,
			fontSubstitutesKey, "/t", "REG_SZ", "/v", fontName, "/d", notoFaceName, "/f"))
	}
	for entry := range notoMetricsEntries {
		weight := domain.WeightNormal
		if entry == "Caption" {
			weight = domain.WeightBold
		}
		record, err := domain.LogFont{
			Height:         -12,
			Weight:         weight,
			CharSet:        domain.DefaultCharset,
			OutPrecision:   domain.OutDefaultPrecis,
			ClipPrecision:  domain.ClipDefaultPrecis,
			Quality:        domain.DefaultQuality,
			PitchAndFamily: uint8(domain.VariablePitch) | uint8(domain.FamilySwiss),
			FaceName:       notoFaceName,
		}.Encode()
		if err != nil {
			return nil, err
		}
		steps = append(steps, regAdd(env,
			windowMetricsKey, "/t", "REG_BINARY", "/v", entry+"Font",
			"/d", hex.EncodeToString(record), "/f"))
	}
	return steps, nil
}
