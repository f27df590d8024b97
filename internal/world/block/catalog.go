package block

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Catalog - YAML-описание таблицы возможностей
//
//	blocks:
//	  - id: 12
//	    name: water
//	    flags: [transparent, connect, no_hitbox, fluid]
type Catalog struct {
	Blocks []CatalogEntry `yaml:"blocks"`
}

// CatalogEntry - одна запись каталога
type CatalogEntry struct {
	ID    int      `yaml:"id"`
	Name  string   `yaml:"name"`
	Flags []string `yaml:"flags"`
}

// ParseCatalog разбирает YAML каталога и строит таблицу
func ParseCatalog(data []byte) (*Table, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("каталог блоков: %w", err)
	}

	defs := make([]Def, 0, len(c.Blocks))
	for i, entry := range c.Blocks {
		if entry.ID < 0 || entry.ID > 255 {
			return nil, fmt.Errorf("каталог блоков: запись %d (%s): id %d вне диапазона 0-255", i, entry.Name, entry.ID)
		}

		var flags Flags
		for _, name := range entry.Flags {
			flag, err := ParseFlag(name)
			if err != nil {
				return nil, fmt.Errorf("каталог блоков: запись %d (%s): %w", i, entry.Name, err)
			}
			flags |= flag
		}
		defs = append(defs, Def{ID: BlockID(entry.ID), Name: entry.Name, Flags: flags})
	}

	t, err := NewTable(defs)
	if err != nil {
		return nil, fmt.Errorf("каталог блоков: %w", err)
	}
	return t, nil
}

// LoadCatalog читает каталог из файла
func LoadCatalog(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("чтение каталога блоков %s: %w", path, err)
	}
	return ParseCatalog(data)
}
