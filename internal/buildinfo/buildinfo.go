// Package buildinfo предоставляет функциональность для управления информацией о сборке приложения.
// Информация о сборке включает версию, дату сборки и commit hash, передаваемые через ldflags.
package buildinfo

import "fmt"

// unknownValue подставляется вместо полей, не заданных при сборке
const unknownValue = "N/A"

// Info содержит информацию о сборке приложения
type Info struct {
	Version string
	Date    string
	Commit  string
}

// DefaultInfo возвращает информацию о сборке по умолчанию
func DefaultInfo() *Info {
	return &Info{
		Version: unknownValue,
		Date:    unknownValue,
		Commit:  unknownValue,
	}
}

// NewInfo создает новую структуру с информацией о сборке.
// Пустые значения (ldflags не переданы) заменяются на "N/A".
func NewInfo(version, date, commit string) *Info {
	return &Info{
		Version: valueOrUnknown(version),
		Date:    valueOrUnknown(date),
		Commit:  valueOrUnknown(commit),
	}
}

func valueOrUnknown(value string) string {
	if value == "" {
		return unknownValue
	}
	return value
}

// Print выводит информацию о сборке в консоль
func (info *Info) Print() {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}

// String возвращает строковое представление информации о сборке
func (info *Info) String() string {
	return fmt.Sprintf("Version: %s, Date: %s, Commit: %s", info.Version, info.Date, info.Commit)
}
