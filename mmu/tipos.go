package mmu

import (
	"errors"
	"sync"
)

// Permisos de acceso a una página. "Solo lectura" es el bit de lectura
// solo; "lectura-escritura" son ambos bits.
const (
	PermisoLectura   = 0x01
	PermisoEscritura = 0x02
)

// Errores que el simulador reporta al llamador
var (
	ErrSinMarcos      = errors.New("no hay marcos libres disponibles")
	ErrAccesoDenegado = errors.New("violación de protección: escritura sobre página de solo lectura")
)

// EntradaPagina representa una entrada de la tabla de páginas
type EntradaPagina struct {
	Valido     bool // Indica si la entrada mapea un marco
	Escribible bool // Indica si la página admite escrituras
	Privada    bool // Marca una página compartida por copy-on-write durante un fork
	Marco      int  // Número de marco físico asignado
}

// DirectorioPaginas es un directorio interno de entradas, indexado por
// vpn % EntradasPorTabla
type DirectorioPaginas struct {
	Entradas []EntradaPagina
}

// TablaPaginas es el nivel externo: directorios creados a demanda,
// indexados por vpn / EntradasPorTabla. Un directorio nil significa que
// nunca se asignó una página en ese rango.
type TablaPaginas struct {
	Directorios []*DirectorioPaginas
}

// Proceso representa un proceso de la simulación con su tabla de páginas
type Proceso struct {
	PID   int
	Tabla TablaPaginas
}

// ConfigMMU define las constantes que el simulador toma de su entorno
type ConfigMMU struct {
	CantidadMarcos   int // Cantidad de marcos físicos
	EntradasPorTabla int // Entradas por directorio (y directorios por tabla)
}

// Simulacion es el estado completo del simulador de MMU: la cola de
// procesos listos, el proceso en ejecución, los contadores de mapeo por
// marco y las métricas por proceso. Toda operación exportada toma el
// mutex, de modo que el estado se muta como una unidad.
type Simulacion struct {
	mu sync.Mutex

	config ConfigMMU

	colaListos    []*Proceso
	procesoActual *Proceso

	contadorMapeos []int // marco -> cantidad de entradas válidas que lo apuntan

	metricasPorProceso map[int]*MetricasProceso
}
