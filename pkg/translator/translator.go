package translator

import (
	"embed"
	"os"
	"path/filepath"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

//go:embed translation/*.toml
var defaultTranslations embed.FS

var Translator *i18n.Bundle

type Config struct {
	TranslationFolder  string
	SupportedLanguages []string
}

const (
	LanguageFr = "fr"
	LanguageEn = "en"
)

// InitTranslator loads the embedded messages for every supported language,
// then overlays <lang>.toml files found in TranslationFolder.
func InitTranslator(cfg Config) {
	Translator = i18n.NewBundle(language.English)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, lang := range cfg.SupportedLanguages {
		name := lang + ".toml"
		if _, err := Translator.LoadMessageFileFS(defaultTranslations, "translation/"+name); err != nil {
			zap.L().Debug("no embedded translation", zap.String("lang", lang), zap.Error(err))
		}

		if cfg.TranslationFolder == "" {
			continue
		}
		path := filepath.Join(cfg.TranslationFolder, name)
		content, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				zap.L().Warn("failed to read translation file", zap.String("file", path), zap.Error(err))
			}
			continue
		}
		if _, err := Translator.ParseMessageFileBytes(content, path); err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", path), zap.Error(err))
		}
	}
}
