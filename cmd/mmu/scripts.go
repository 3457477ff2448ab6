package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sisoputnfrba/tp-2025-2c-LosPaginadores/mmu"
	"github.com/sisoputnfrba/tp-2025-2c-LosPaginadores/utils"
)

// ejecutarScript corre un archivo de operaciones contra la simulación.
// El formato es el del enunciado, una operación por línea:
//
//	r <vpn>   acceso de lectura
//	w <vpn>   acceso de escritura
//	l <vpn>   liberar la página
//	s <pid>   cambiar al proceso (fork si no existe)
//	m <pid>   registrar las métricas del proceso
//	d         volcar el estado a un archivo
func ejecutarScript(nombre string) error {
	ruta := nombre
	if !strings.Contains(nombre, string(filepath.Separator)) {
		ruta = filepath.Join(config.ScriptsPath, nombre)
	}

	utils.InfoLog.Info("Cargando script de operaciones", "archivo", ruta)

	contenido, err := os.ReadFile(ruta)
	if err != nil {
		return fmt.Errorf("error al leer el script %s: %v", ruta, err)
	}

	lineas := strings.Split(string(contenido), "\n")
	ejecutadas := 0

	for nroLinea, linea := range lineas {
		linea = strings.TrimSpace(linea)
		if linea == "" || strings.HasPrefix(linea, "#") {
			continue
		}

		if err := ejecutarOperacion(linea); err != nil {
			return fmt.Errorf("línea %d (%q): %v", nroLinea+1, linea, err)
		}
		ejecutadas++
	}

	utils.InfoLog.Info("Script completado", "archivo", ruta, "operaciones", ejecutadas)
	return nil
}

func ejecutarOperacion(linea string) error {
	campos := strings.Fields(linea)
	operacion := campos[0]

	if operacion == "d" {
		_, err := simulacion.VolcarEstado(config.DumpPath)
		return err
	}

	if len(campos) < 2 {
		return fmt.Errorf("la operación %q requiere un argumento", operacion)
	}
	argumento, err := strconv.Atoi(campos[1])
	if err != nil {
		return fmt.Errorf("argumento inválido %q: %v", campos[1], err)
	}

	utils.AplicarRetardo("operacion", config.MemoryDelay)

	switch operacion {
	case "r":
		return accesoScript(argumento, mmu.PermisoLectura)
	case "w":
		return accesoScript(argumento, mmu.PermisoLectura|mmu.PermisoEscritura)
	case "l":
		simulacion.LiberarPagina(argumento)
		return nil
	case "s":
		simulacion.CambiarProceso(argumento)
		return nil
	case "m":
		m := simulacion.Metricas(argumento)
		utils.InfoLog.Info(fmt.Sprintf("## PID: %d - Métricas: Fallos %d, Asignaciones %d, Liberaciones %d, COW dup %d, COW prom %d, Cambios %d, Forks %d",
			argumento, m.FallosAtendidos, m.AsignacionesMarco, m.LiberacionesPagina,
			m.DuplicacionesCOW, m.PromocionesCOW, m.CambiosContexto, m.Forks))
		return nil
	}
	return fmt.Errorf("operación desconocida %q", operacion)
}

// accesoScript ejecuta un acceso y trata la violación de protección como
// un evento de la simulación, no como error del script: el proceso
// fallante queda reportado y el script continúa
func accesoScript(vpn int, permiso int) error {
	_, err := simularAcceso(vpn, permiso)
	if errors.Is(err, mmu.ErrAccesoDenegado) {
		utils.ErrorLog.Error(fmt.Sprintf("## PID: %d - Segmentation Fault - Página: %d",
			simulacion.ProcesoActual(), vpn))
		return nil
	}
	return err
}
