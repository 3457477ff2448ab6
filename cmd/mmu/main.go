package main

import (
	"fmt"
	"os"

	"github.com/sisoputnfrba/tp-2025-2c-LosPaginadores/mmu"
	"github.com/sisoputnfrba/tp-2025-2c-LosPaginadores/utils"
)

var (
	modulo     *utils.Modulo
	simulacion *mmu.Simulacion
)

func main() {
	// Verificar argumentos
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Uso: %s <archivo_configuracion> [script]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Ejemplo: %s configs/mmu-config.json scripts/cow.txt\n", os.Args[0])
		os.Exit(1)
	}

	// Inicializar logger ANTES de usarlo
	utils.InicializarLogger("info", "MMU")

	utils.InfoLog.Info("Iniciando módulo MMU")

	inicializarModulo()

	// Con un script como argumento se ejecuta en modo batch y se termina;
	// sin script, el módulo queda sirviendo operaciones por HTTP
	if len(os.Args) >= 3 {
		if err := ejecutarScript(os.Args[2]); err != nil {
			utils.ErrorLog.Error("Error ejecutando script", "script", os.Args[2], "error", err)
			os.Exit(1)
		}
		return
	}

	registrarHandlers()
	modulo.IniciarServidor(config.IPMMU, config.PortMMU)
	utils.InfoLog.Info("Servidor iniciado", "ip", config.IPMMU, "puerto", config.PortMMU)

	// Mantener el programa corriendo
	select {}
}

func inicializarModulo() {
	rutaConfig := os.Args[1]

	// Verificar que el archivo existe
	if _, err := os.Stat(rutaConfig); os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Error: El archivo de configuración no existe: %s\n", rutaConfig)
		os.Exit(1)
	}

	modulo = utils.NuevoModulo("MMU", rutaConfig)
	config = utils.CargarConfiguracion[MMUConfig](rutaConfig)

	// Actualizar logger con configuración del archivo
	utils.InicializarLogger(config.LogLevel, "MMU")
	utils.InfoLog.Info("Configuración cargada", "nivel_log", config.LogLevel, "config_path", rutaConfig)

	if err := os.MkdirAll(config.DumpPath, 0755); err != nil {
		utils.InfoLog.Warn("No se pudo crear directorio para dumps", "error", err)
	}

	simulacion = mmu.NuevaSimulacion(mmu.ConfigMMU{
		CantidadMarcos:   config.CantidadMarcos,
		EntradasPorTabla: config.EntradasPorTabla,
	}, 0)

	utils.InfoLog.Info("MMU inicializada correctamente")
}

func registrarHandlers() {
	modulo.RegistrarHandler(utils.MensajeHandshake, handlerHandshake)
	modulo.RegistrarHandler(utils.MensajeAcceso, handlerAcceso)
	modulo.RegistrarHandler(utils.MensajeLiberarPagina, handlerLiberarPagina)
	modulo.RegistrarHandler(utils.MensajeCambiarProceso, handlerCambiarProceso)
	modulo.RegistrarHandler(utils.MensajeMemoryDump, handlerMemoryDump)
	modulo.RegistrarHandler(utils.MensajeMetricas, handlerMetricas)
	modulo.RegistrarHandler(utils.MensajeEstado, handlerEstado)

	utils.InfoLog.Info("Handlers registrados correctamente")
}
