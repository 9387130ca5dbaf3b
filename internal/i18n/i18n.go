// Package i18n holds the English and Spanish message catalog for all
// user-facing simulator text.
//
// Message keys are the English format strings, so an untranslated key still
// prints sensibly. Printers also localize numbers (1,024 vs 1.024).
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys.
const (
	CapacityPrompt  = "Enter the total memory size (MB, e.g. 64): "
	CapacityInvalid = "Invalid input. Please enter a positive integer for the size: "
	CapacityWarning = "Warning: invalid memory size (%d). Using %d MB instead."

	MenuTitle         = "--- MEMORY MANAGEMENT SIMULATOR ---"
	MenuLoad          = "1. Load process (first-fit)"
	MenuFree          = "2. Free process"
	MenuCompact       = "3. Compact memory (physically)"
	MenuShow          = "4. Show memory state"
	MenuInternal      = "5. Internal fragmentation (simulated)"
	MenuExternal      = "6. External fragmentation"
	MenuExit          = "0. Exit"
	MenuPrompt        = "Select an option: "
	MenuNotANumber    = "Invalid option. Please enter a number."
	MenuUnknown       = "Invalid option. Try again."
	OwnerPrompt       = "Process name: "
	SizePrompt        = "Process size (MB): "
	FreePrompt        = "Name of the process to free: "
	SizeRejected      = "Invalid process size."
	Exiting           = "Exiting the simulator..."
	StateHeader       = "Memory state (%d MB bar):"
	Loaded            = "Process '%s' (%d MB) loaded at %d."
	Released          = "Process '%s' freed."
	Compacted         = "Memory physically compacted."
	ResetDone         = "Memory reset to %d MB."
	ErrInvalidSize    = "Error: invalid process size (%d MB)."
	ErrEmptyOwner     = "Error: the process name cannot be empty."
	ErrReservedOwner  = "Error: the process name cannot be '%s'."
	ErrReservedFree   = "Error: a '%s' block cannot be freed."
	ErrDuplicateOwner = "Error: process '%s' is already loaded."
	ErrNoSpace        = "Not enough contiguous free space for process '%s' (%d MB). Try compacting."
	ErrNotFound       = "Process '%s' not found."
	ErrInvariant      = "Error: layout check failed: %v"
	InternalReport    = "Internal fragmentation (simple allocation-waste simulation): %d MB"
	InternalNote      = "(Note: in this exact-fit model the real internal fragmentation is %d MB)"
	ExternalReport    = "Total external fragmentation: %d MB"
	ExternalExtents   = " (in %d free block(s), largest %d MB)"
	StatsReport       = "Allocations: %d (%d failed, %d exact fits, %d splits). Releases: %d, merges: %d. Compactions: %d (%d blocks moved)."
	UsageReport       = "Used: %d MB, free: %d MB of %d MB"
	FreeLabel         = "FREE"
	HelpText          = "Commands: alloc <name> <size>, free <name>, compact, show, internal, external, stats, reset [size], exit"
	ResetPrompt       = "New memory size (MB, empty keeps the current one): "
	Copied            = "Layout copied to clipboard."
	CopyFailed        = "Could not copy to clipboard: %v"
	StripOmitted      = "Memory above %d MB is not drawn unit by unit; showing the block table."
	FragmentedTag     = "fragmented: %d free blocks"
)

var translations = map[string]string{
	CapacityPrompt:    "Ingrese el tamaño total de la memoria (MB, ej. 64): ",
	CapacityInvalid:   "Entrada inválida. Por favor, ingrese un número entero positivo para el tamaño: ",
	CapacityWarning:   "Advertencia: Tamaño de memoria inválido (%d). Usando %d MB en su lugar.",
	MenuTitle:         "--- SIMULADOR DE GESTIÓN DE MEMORIA ---",
	MenuLoad:          "1. Cargar proceso (First-Fit)",
	MenuFree:          "2. Liberar proceso",
	MenuCompact:       "3. Compactar memoria (físicamente)",
	MenuShow:          "4. Ver estado de la memoria",
	MenuInternal:      "5. Calcular fragmentación interna (simulada)",
	MenuExternal:      "6. Calcular fragmentación externa",
	MenuExit:          "0. Salir",
	MenuPrompt:        "Selecciona una opción: ",
	MenuNotANumber:    "Opción no válida. Por favor, ingrese un número.",
	MenuUnknown:       "Opción no válida. Intente de nuevo.",
	OwnerPrompt:       "Nombre del proceso: ",
	SizePrompt:        "Tamaño del proceso (MB): ",
	FreePrompt:        "Nombre del proceso a liberar: ",
	SizeRejected:      "Tamaño de proceso inválido.",
	Exiting:           "Saliendo del simulador...",
	StateHeader:       "Estado de la memoria (barra de %d MB):",
	Loaded:            "Proceso '%s' (%d MB) cargado en %d.",
	Released:          "Proceso '%s' liberado.",
	Compacted:         "Memoria compactada físicamente.",
	ResetDone:         "Memoria reiniciada a %d MB.",
	ErrInvalidSize:    "Error: Tamaño de proceso inválido (%d MB).",
	ErrEmptyOwner:     "Error: El nombre del proceso no puede estar vacío.",
	ErrReservedOwner:  "Error: El nombre del proceso no puede ser '%s'.",
	ErrReservedFree:   "Error: No se puede liberar un bloque '%s'.",
	ErrDuplicateOwner: "Error: El proceso '%s' ya está cargado.",
	ErrNoSpace:        "No hay suficiente espacio libre contiguo para el proceso '%s' (%d MB). Intenta compactar.",
	ErrNotFound:       "Proceso '%s' no encontrado.",
	ErrInvariant:      "Error: falló la verificación de la memoria: %v",
	InternalReport:    "Fragmentación interna (simulación simple de desperdicio por asignación): %d MB",
	InternalNote:      "(Nota: En este modelo de asignación exacta, la fragmentación interna real es %d MB)",
	ExternalReport:    "Fragmentación externa total: %d MB",
	ExternalExtents:   " (en %d bloque(s) libre(s), el mayor de %d MB)",
	StatsReport:       "Asignaciones: %d (%d fallidas, %d exactas, %d divisiones). Liberaciones: %d, fusiones: %d. Compactaciones: %d (%d bloques movidos).",
	UsageReport:       "Usado: %d MB, libre: %d MB de %d MB",
	FreeLabel:         "Libre",
	HelpText:          "Comandos: cargar <nombre> <tamaño>, liberar <nombre>, compactar, ver, internal, external, stats, reset [tamaño], salir",
	ResetPrompt:       "Nuevo tamaño de memoria (MB, vacío conserva el actual): ",
	Copied:            "Estado copiado al portapapeles.",
	CopyFailed:        "No se pudo copiar al portapapeles: %v",
	StripOmitted:      "La memoria de más de %d MB no se dibuja unidad por unidad; se muestra la tabla de bloques.",
	FragmentedTag:     "fragmentada: %d bloques libres",
}

var cat = newCatalog()

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, es := range translations {
		_ = b.SetString(language.English, key, key)
		_ = b.SetString(language.Spanish, key, es)
	}
	return b
}

// Languages lists the supported language tags.
func Languages() []language.Tag {
	return cat.Languages()
}

// New returns a printer for lang ("en", "es", or any BCP 47 tag). Unknown
// languages fall back to English.
func New(lang string) *message.Printer {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	// Sorted, so English is first and doubles as the matcher default.
	supported := cat.Languages()
	_, idx, _ := language.NewMatcher(supported).Match(tag)
	return message.NewPrinter(supported[idx], message.Catalog(cat))
}
