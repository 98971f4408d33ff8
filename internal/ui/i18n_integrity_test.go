package ui_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-datewheel/internal/config"
)

var translationKeys = []string{
	config.TKeyWinTitle,
	config.TKeyWinSettings,
	config.TKeyMenuSettings,
	config.TKeyMenuNow,
	config.TKeyStatusNone,
	config.TKeyStatusAccepted,
	config.TKeyStatusClamped,
	config.TKeyStatusError,
	config.TKeyLblLanguage,
	config.TKeyHelpLanguage,
	config.TKeyLblRange,
	config.TKeyLblLowerBound,
	config.TKeyLblUpperBound,
	config.TKeyHelpBound,
	config.TKeyLblStrict,
	config.TKeyLblFallback,
	config.TKeyFallbackError,
	config.TKeyFallbackNearest,
	config.TKeyLblPort,
	config.TKeyHelpPort,
	config.TKeyLblGeneral,
	config.TKeyLblEnableRem,
	config.TKeyUnitDays,
	config.TKeyUnitHours,
	config.TKeyUnitMinutes,
	config.TKeyDirBefore,
	config.TKeyDirAfter,
	config.TKeyLblNotif,
	config.TKeyBtnSave,
	config.TKeyBtnCancel,
	config.TKeyLblFooter,
	config.TKeyEvtSummary,
	config.TKeyErrPortReq,
	config.TKeyErrPortNum,
	config.TKeyErrPortRange,
	config.TKeyErrDate,
	config.TKeyErrBounds,
}

// TestI18nIntegrity ensures that every translation key defined in config.go
// exists in each supported locale file.
func TestI18nIntegrity(t *testing.T) {
	definedKeys := make(map[string]bool, len(translationKeys))
	for _, k := range translationKeys {
		definedKeys[k] = true
	}

	for _, lang := range config.SupportedLanguages {
		t.Run(lang, func(t *testing.T) {
			jsonMap := loadLocale(t, lang)

			for key := range definedKeys {
				_, exists := jsonMap[key]
				assert.Truef(t, exists, "Key '%s' defined in config.go is missing in active.%s.json", key, lang)
			}

			for jsonKey := range jsonMap {
				if strings.HasPrefix(jsonKey, "_") {
					continue
				}
				if !definedKeys[jsonKey] {
					t.Logf("Warning: Key '%s' exists in JSON but is not checked in the test suite (might be unused)", jsonKey)
				}
			}
		})
	}
}

// TestI18nTemplates checks that templated messages keep their placeholder.
func TestI18nTemplates(t *testing.T) {
	for _, lang := range config.SupportedLanguages {
		jsonMap := loadLocale(t, lang)
		for _, key := range []string{config.TKeyStatusAccepted, config.TKeyStatusClamped, config.TKeyEvtSummary} {
			assert.Containsf(t, jsonMap[key], "{{.Time}}", "%s in %s", key, lang)
		}
		assert.Containsf(t, jsonMap[config.TKeyLblFooter], "%s", "footer in %s", lang)
	}
}

func loadLocale(t *testing.T, lang string) map[string]string {
	t.Helper()

	name := "active." + lang + ".json"
	content, err := os.ReadFile(filepath.Join("locales", name))
	if os.IsNotExist(err) {
		content, err = os.ReadFile(filepath.Join("..", "..", "internal", "ui", "locales", name))
	}
	require.NoError(t, err, "Must load %s", name)

	var jsonMap map[string]string
	require.NoError(t, json.Unmarshal(content, &jsonMap), "JSON must be valid")
	return jsonMap
}
