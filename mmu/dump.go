package mmu

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/sisoputnfrba/tp-2025-2c-LosPaginadores/utils"
)

// VolcadoPagina es una página válida dentro de un volcado de estado
type VolcadoPagina struct {
	VPN        int
	Marco      int
	Escribible bool
	Privada    bool
}

// VolcadoProceso es la vista de un proceso dentro de un volcado
type VolcadoProceso struct {
	PID     int
	Paginas []VolcadoPagina
}

// VolcadoSimulacion es la foto completa de la contabilidad del simulador.
// Los marcos no guardan contenido, así que el volcado es solo
// contabilidad: mapeos, flags y métricas.
type VolcadoSimulacion struct {
	Fecha          time.Time
	ProcesoActual  VolcadoProceso
	ColaListos     []VolcadoProceso
	ContadorMapeos []int
	Metricas       map[int]MetricasProceso
}

// VolcarEstado serializa el estado de la simulación con msgpack en un
// archivo mmu-<fecha>.dmp dentro del directorio indicado. Devuelve la
// ruta del archivo generado.
func (s *Simulacion) VolcarEstado(directorio string) (string, error) {
	s.mu.Lock()
	volcado := s.armarVolcado()
	s.mu.Unlock()

	if err := os.MkdirAll(directorio, 0755); err != nil {
		utils.ErrorLog.Error("Error creando directorio de dumps", "directorio", directorio, "error", err)
		return "", fmt.Errorf("error al crear directorio para dumps: %v", err)
	}

	nombreArchivo := fmt.Sprintf("mmu-%s.dmp", volcado.Fecha.Format("20060102-150405"))
	rutaCompleta := filepath.Join(directorio, nombreArchivo)

	datos, err := msgpack.Marshal(&volcado)
	if err != nil {
		utils.ErrorLog.Error("Error serializando volcado", "error", err)
		return "", fmt.Errorf("error al serializar volcado: %v", err)
	}

	if err := os.WriteFile(rutaCompleta, datos, 0644); err != nil {
		utils.ErrorLog.Error("Error escribiendo dump", "archivo", rutaCompleta, "error", err)
		return "", fmt.Errorf("error al escribir archivo de dump: %v", err)
	}

	utils.InfoLog.Info(fmt.Sprintf("## Memory Dump solicitado - Archivo: %s", nombreArchivo))
	return rutaCompleta, nil
}

// LeerVolcado deserializa un archivo de volcado generado por VolcarEstado
func LeerVolcado(ruta string) (*VolcadoSimulacion, error) {
	datos, err := os.ReadFile(ruta)
	if err != nil {
		return nil, fmt.Errorf("error al leer archivo de dump: %v", err)
	}

	var volcado VolcadoSimulacion
	if err := msgpack.Unmarshal(datos, &volcado); err != nil {
		return nil, fmt.Errorf("error al deserializar volcado: %v", err)
	}
	return &volcado, nil
}

func (s *Simulacion) armarVolcado() VolcadoSimulacion {
	volcado := VolcadoSimulacion{
		Fecha:          time.Now(),
		ProcesoActual:  s.volcarProceso(s.procesoActual),
		ColaListos:     []VolcadoProceso{},
		ContadorMapeos: make([]int, len(s.contadorMapeos)),
		Metricas:       make(map[int]MetricasProceso, len(s.metricasPorProceso)),
	}

	copy(volcado.ContadorMapeos, s.contadorMapeos)
	for _, p := range s.colaListos {
		volcado.ColaListos = append(volcado.ColaListos, s.volcarProceso(p))
	}
	for pid, m := range s.metricasPorProceso {
		volcado.Metricas[pid] = *m
	}
	return volcado
}

func (s *Simulacion) volcarProceso(p *Proceso) VolcadoProceso {
	vp := VolcadoProceso{PID: p.PID, Paginas: []VolcadoPagina{}}

	for i, directorio := range p.Tabla.Directorios {
		if directorio == nil {
			continue
		}
		for j, entrada := range directorio.Entradas {
			if !entrada.Valido {
				continue
			}
			vp.Paginas = append(vp.Paginas, VolcadoPagina{
				VPN:        i*s.config.EntradasPorTabla + j,
				Marco:      entrada.Marco,
				Escribible: entrada.Escribible,
				Privada:    entrada.Privada,
			})
		}
	}
	return vp
}
