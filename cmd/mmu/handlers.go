package main

import (
	"errors"

	"github.com/sisoputnfrba/tp-2025-2c-LosPaginadores/mmu"
	"github.com/sisoputnfrba/tp-2025-2c-LosPaginadores/utils"
)

// Handler para handshake
func handlerHandshake(msg *utils.Mensaje) (interface{}, error) {
	utils.InfoLog.Info("Handshake recibido", "origen", msg.Origen)

	return map[string]interface{}{
		"status":             "OK",
		"cantidad_marcos":    config.CantidadMarcos,
		"entradas_por_tabla": config.EntradasPorTabla,
	}, nil
}

// handlerAcceso atiende un acceso de lectura o escritura sobre una página
func handlerAcceso(msg *utils.Mensaje) (interface{}, error) {
	vpn, ok := utils.ExtraerEntero(msg, "vpn")
	if !ok {
		return map[string]interface{}{"error": "vpn no proporcionada o formato incorrecto"}, nil
	}

	permiso := mmu.PermisoLectura
	if accion, _ := utils.ExtraerCadena(msg, "accion"); accion == "ESCRIBIR" {
		permiso |= mmu.PermisoEscritura
	}

	utils.AplicarRetardo("acceso", config.MemoryDelay)

	marco, err := simularAcceso(vpn, permiso)
	if err != nil {
		if errors.Is(err, mmu.ErrAccesoDenegado) {
			return map[string]interface{}{
				"status": "SEGMENTATION_FAULT",
				"pid":    simulacion.ProcesoActual(),
			}, nil
		}
		return map[string]interface{}{"error": err.Error()}, nil
	}

	return map[string]interface{}{
		"status": "OK",
		"marco":  marco,
	}, nil
}

// handlerLiberarPagina desmapea una página del proceso actual
func handlerLiberarPagina(msg *utils.Mensaje) (interface{}, error) {
	vpn, ok := utils.ExtraerEntero(msg, "vpn")
	if !ok {
		return map[string]interface{}{"error": "vpn no proporcionada o formato incorrecto"}, nil
	}

	utils.AplicarRetardo("liberar", config.MemoryDelay)
	simulacion.LiberarPagina(vpn)

	return map[string]interface{}{"status": "OK"}, nil
}

// handlerCambiarProceso cambia de contexto o forkea según el PID
func handlerCambiarProceso(msg *utils.Mensaje) (interface{}, error) {
	pid, ok := utils.ExtraerEntero(msg, "pid")
	if !ok {
		return map[string]interface{}{"error": "pid no proporcionado o formato incorrecto"}, nil
	}

	simulacion.CambiarProceso(pid)

	return map[string]interface{}{
		"status":     "OK",
		"pid_actual": simulacion.ProcesoActual(),
	}, nil
}

// handlerMemoryDump vuelca el estado de la simulación a un archivo
func handlerMemoryDump(msg *utils.Mensaje) (interface{}, error) {
	utils.InfoLog.Info("Solicitud de memory dump recibida", "origen", msg.Origen)

	ruta, err := simulacion.VolcarEstado(config.DumpPath)
	if err != nil {
		utils.ErrorLog.Error("Error al crear memory dump", "error", err)
		return map[string]interface{}{"error": err.Error()}, nil
	}

	return map[string]interface{}{
		"status":  "OK",
		"archivo": ruta,
	}, nil
}

// handlerMetricas devuelve las métricas acumuladas de un proceso
func handlerMetricas(msg *utils.Mensaje) (interface{}, error) {
	pid, ok := utils.ExtraerEntero(msg, "pid")
	if !ok {
		return map[string]interface{}{"error": "pid no proporcionado o formato incorrecto"}, nil
	}

	m := simulacion.Metricas(pid)

	return map[string]interface{}{
		"status":              "OK",
		"fallos_atendidos":    m.FallosAtendidos,
		"asignaciones_marco":  m.AsignacionesMarco,
		"liberaciones_pagina": m.LiberacionesPagina,
		"duplicaciones_cow":   m.DuplicacionesCOW,
		"promociones_cow":     m.PromocionesCOW,
		"cambios_contexto":    m.CambiosContexto,
		"forks":               m.Forks,
	}, nil
}

// handlerEstado devuelve el estado global: proceso actual, cola y marcos
func handlerEstado(msg *utils.Mensaje) (interface{}, error) {
	return map[string]interface{}{
		"status":          "OK",
		"pid_actual":      simulacion.ProcesoActual(),
		"procesos_listos": simulacion.ProcesosListos(),
		"marcos_libres":   simulacion.MarcosLibres(),
	}, nil
}
