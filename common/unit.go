package common

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Unit is a single compilation unit: one source text holding one class.
type Unit struct {
	ID uuid.UUID

	// Name is the class name, set once the class header is parsed.
	Name string

	AbsPath     string
	DisplayPath string
	Source      string

	Program *AstProgram
	Symbols *SymbolTable
}

func NewUnit(displayPath, source string) *Unit {
	return &Unit{
		ID:          uuid.New(),
		DisplayPath: displayPath,
		Source:      source,
	}
}

func LoadUnit(srcPath string) (*Unit, error) {
	absPath, err := filepath.Abs(srcPath)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(absPath)
	if err != nil {
		return nil, err
	}

	unit := NewUnit(filepath.Clean(srcPath), string(content))
	unit.AbsPath = absPath

	return unit, nil
}
