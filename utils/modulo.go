package utils

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Modulo representa un módulo genérico del sistema
type Modulo struct {
	Nombre     string
	Server     *HTTPServer
	Clientes   map[string]*HTTPClient
	ConfigPath string
	handlers   map[int]HTTPHandlerFunc
}

// NuevoModulo crea una nueva instancia de un módulo
func NuevoModulo(nombre string, configPath string) *Modulo {
	return &Modulo{
		Nombre:     nombre,
		Clientes:   make(map[string]*HTTPClient),
		ConfigPath: configPath,
		handlers:   make(map[int]HTTPHandlerFunc),
	}
}

// RegistrarHandler registra un handler para un tipo de mensaje
func (m *Modulo) RegistrarHandler(tipo int, handler HTTPHandlerFunc) {
	m.handlers[tipo] = handler
}

// ConectarCliente crea y registra un cliente HTTP hacia otro módulo
func (m *Modulo) ConectarCliente(destino string, ip string, puerto int) *HTTPClient {
	cliente := NewHTTPClient(ip, puerto, m.Nombre)
	m.Clientes[destino] = cliente
	return cliente
}

// IniciarServidor crea e inicializa el servidor HTTP del módulo
func (m *Modulo) IniciarServidor(ip string, puerto int) {
	m.Server = NewHTTPServer(ip, puerto, m.Nombre)

	for tipo, handler := range m.handlers {
		m.Server.RegisterHTTPHandler(tipo, handler)
	}

	go func() {
		err := m.Server.Start()
		if err != nil {
			slog.Error("Error al iniciar servidor HTTP", "error", err)
			os.Exit(1)
		}
	}()

	slog.Info("Servidor HTTP iniciado", "módulo", m.Nombre, "dirección", fmt.Sprintf("%s:%d", ip, puerto))
}

// CargarConfiguracion lee y decodifica un archivo de configuración JSON
func CargarConfiguracion[T any](ruta string) *T {
	slog.Info("Cargando configuración", "ruta", ruta)

	absPath, err := filepath.Abs(ruta)
	if err != nil {
		slog.Error("Error obteniendo ruta absoluta", "error", err, "ruta", ruta)
		os.Exit(1)
	}

	file, err := os.Open(absPath)
	if err != nil {
		slog.Error("Error abriendo archivo de configuración", "error", err, "archivo", absPath)
		os.Exit(1)
	}
	defer file.Close()

	var config T
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&config); err != nil {
		slog.Error("Error decodificando configuración", "error", err, "archivo", absPath)
		os.Exit(1)
	}

	slog.Info("Configuración cargada correctamente")
	return &config
}

// ============================================================================
// Constantes para tipos de mensajes entre módulos
// ============================================================================
const (
	// === COMUNICACIÓN BÁSICA (1-9) ===
	MensajeHandshake = 1 // Conexión inicial

	// === OPERACIONES DE MMU (10-19) ===
	MensajeAcceso        = 10 // Acceso de lectura/escritura a una página
	MensajeLiberarPagina = 11 // Liberar una página del proceso actual
	MensajeMemoryDump    = 12 // Volcado del estado de la simulación

	// === GESTIÓN DE PROCESOS (20-29) ===
	MensajeCambiarProceso = 20 // Cambio de contexto o fork

	// === CONSULTAS (30-39) ===
	MensajeMetricas = 30 // Métricas por proceso
	MensajeEstado   = 31 // Estado de marcos y cola de listos
)
