package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sisoputnfrba/tp-2025-2c-LosPaginadores/utils"
)

// ConsolaConfig representa la configuración del módulo Consola
type ConsolaConfig struct {
	IPMMU    string `json:"IP_MMU"`
	PortMMU  int    `json:"PUERTO_MMU"`
	LogLevel string `json:"LOG_LEVEL"`
}

var (
	config    *ConsolaConfig
	mmuClient *utils.HTTPClient
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintf(os.Stderr, "Uso: %s <archivo_configuracion> <script>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Ejemplo: %s configs/consola-config.json scripts/cow.txt\n", os.Args[0])
		os.Exit(1)
	}

	utils.InicializarLogger("info", "Consola")
	utils.InfoLog.Info("Iniciando módulo Consola")

	config = utils.CargarConfiguracion[ConsolaConfig](os.Args[1])
	utils.InicializarLogger(config.LogLevel, "Consola")

	mmuClient = utils.NewHTTPClient(config.IPMMU, config.PortMMU, "Consola")
	if err := mmuClient.VerificarConexion(); err != nil {
		utils.ErrorLog.Error("No se pudo conectar con la MMU", "error", err)
		os.Exit(1)
	}

	// Handshake: la MMU informa sus constantes
	respuesta, err := mmuClient.EnviarHTTPMensaje(utils.MensajeHandshake, "handshake", nil)
	if err != nil {
		utils.ErrorLog.Error("Error en handshake con la MMU", "error", err)
		os.Exit(1)
	}
	utils.InfoLog.Info("Handshake completado", "respuesta", respuesta)

	if err := ejecutarScript(os.Args[2]); err != nil {
		utils.ErrorLog.Error("Error ejecutando script", "script", os.Args[2], "error", err)
		os.Exit(1)
	}

	utils.InfoLog.Info("Script completado", "script", os.Args[2])
}

// ejecutarScript envía a la MMU una operación por línea del script
func ejecutarScript(ruta string) error {
	contenido, err := os.ReadFile(ruta)
	if err != nil {
		return fmt.Errorf("error al leer el script %s: %v", ruta, err)
	}

	for nroLinea, linea := range strings.Split(string(contenido), "\n") {
		linea = strings.TrimSpace(linea)
		if linea == "" || strings.HasPrefix(linea, "#") {
			continue
		}

		if err := enviarOperacion(linea); err != nil {
			return fmt.Errorf("línea %d (%q): %v", nroLinea+1, linea, err)
		}
	}
	return nil
}

func enviarOperacion(linea string) error {
	campos := strings.Fields(linea)
	operacion := campos[0]

	if operacion == "d" {
		return enviar(utils.MensajeMemoryDump, "DUMP", nil)
	}

	if len(campos) < 2 {
		return fmt.Errorf("la operación %q requiere un argumento", operacion)
	}
	argumento, err := strconv.Atoi(campos[1])
	if err != nil {
		return fmt.Errorf("argumento inválido %q: %v", campos[1], err)
	}

	switch operacion {
	case "r":
		return enviar(utils.MensajeAcceso, "ACCESO", map[string]interface{}{"vpn": argumento, "accion": "LEER"})
	case "w":
		return enviar(utils.MensajeAcceso, "ACCESO", map[string]interface{}{"vpn": argumento, "accion": "ESCRIBIR"})
	case "l":
		return enviar(utils.MensajeLiberarPagina, "LIBERAR", map[string]interface{}{"vpn": argumento})
	case "s":
		return enviar(utils.MensajeCambiarProceso, "CAMBIAR_PROCESO", map[string]interface{}{"pid": argumento})
	case "m":
		return enviar(utils.MensajeMetricas, "METRICAS", map[string]interface{}{"pid": argumento})
	}
	return fmt.Errorf("operación desconocida %q", operacion)
}

func enviar(tipo int, operacion string, datos interface{}) error {
	respuesta, err := mmuClient.EnviarHTTPMensaje(tipo, operacion, datos)
	if err != nil {
		return err
	}

	utils.InfoLog.Info("Operación enviada", "operacion", operacion, "respuesta", respuesta)
	return nil
}
