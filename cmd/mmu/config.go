package main

// MMUConfig representa la configuración del módulo MMU
type MMUConfig struct {
	IPMMU            string `json:"IP_MMU"`
	PortMMU          int    `json:"PUERTO_MMU"`
	LogLevel         string `json:"LOG_LEVEL"`
	CantidadMarcos   int    `json:"CANTIDAD_MARCOS"`   // Marcos físicos de la simulación
	EntradasPorTabla int    `json:"ENTRADAS_POR_TABLA"` // Entradas por directorio
	MemoryDelay      int    `json:"RETARDO_MEMORIA"`   // Retardo simulado de acceso
	DumpPath         string `json:"DUMP_PATH"`         // Ruta para los archivos de dump
	ScriptsPath      string `json:"SCRIPTS_PATH"`      // Ruta de los scripts de operaciones
}

var config *MMUConfig
