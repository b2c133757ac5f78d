package cli

import (
	"bytes"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/toyz/exprgen/internal/errors"
	"github.com/toyz/exprgen/internal/models"
	"github.com/toyz/exprgen/internal/utils"
	"github.com/toyz/exprgen/internal/utils/fileops"
)

// DefaultEntries are the Lox expression nodes generated when no entries file is given
var DefaultEntries = models.EntryList{
	"BinaryExpr : Expression* left, Expression* right, Token* op",
	"GroupingExpr : Expression* expr",
	"UnaryExpr : Token* op, Expression*  right",
	"LiteralExpr : lox_literal_t* literal",
}

// EntriesFile is the YAML layout of an entries file
type EntriesFile struct {
	Base    string           `yaml:"base"`
	Entries models.EntryList `yaml:"entries"`
}

// LoadEntriesFile reads and decodes an entries file
func LoadEntriesFile(path string) (*EntriesFile, error) {
	cleanPath, err := fileops.NewPathValidator(fileops.EntriesFileExtensions...).ValidateAndClean(path)
	if err != nil {
		return nil, errors.WrapConfigurationError(path, err).
			WithSuggestion("Pass an existing .yaml or .yml file to --entries")
	}

	content, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, errors.WrapFileSystemError("read", cleanPath, err)
	}

	return ParseEntriesFile(cleanPath, content)
}

// ParseEntriesFile decodes entries file content. Unknown keys are rejected.
func ParseEntriesFile(path string, content []byte) (*EntriesFile, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)

	var file EntriesFile
	if err := decoder.Decode(&file); err != nil {
		if err == io.EOF {
			return nil, errors.NewConfigurationError("entries file", "file is empty").
				WithContext("source", path)
		}
		return nil, errors.WrapConfigurationError(path, utils.WrapParseError("YAML", err)).
			WithSuggestion("Entries files hold an optional 'base' and an 'entries' list of strings")
	}

	if len(file.Entries) == 0 {
		return nil, errors.NewConfigurationError("entries file", "no entries defined").
			WithContext("source", path).
			WithSuggestion("Add at least one 'Name : Type field' line under 'entries:'")
	}
	return &file, nil
}
