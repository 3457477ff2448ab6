package mmu

import (
	"fmt"

	"github.com/sisoputnfrba/tp-2025-2c-LosPaginadores/utils"
)

// CambiarProceso pasa la ejecución al proceso con el PID pedido. Si está
// en la cola de listos se hace un cambio de contexto: se lo desencola,
// el proceso actual se encola y el elegido queda en ejecución. Si no
// está, se interpreta como un fork: se crea un hijo con ese PID cuya
// tabla duplica a la del padre, con todas las páginas compartidas por
// copy-on-write.
func (s *Simulacion) CambiarProceso(pid int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.colaListos {
		if p.PID == pid {
			s.colaListos = append(s.colaListos[:i], s.colaListos[i+1:]...)
			s.colaListos = append(s.colaListos, s.procesoActual)
			s.procesoActual = p
			s.metricas(pid).CambiosContexto++

			utils.InfoLog.Info(fmt.Sprintf("## PID: %d - Cambio de contexto", pid))
			return
		}
	}

	s.forkProceso(pid)
}

// forkProceso crea un hijo del proceso actual con el PID dado y lo deja
// en ejecución, encolando al padre en la cola de listos.
func (s *Simulacion) forkProceso(pid int) {
	padre := s.procesoActual

	// Toda página válida del padre pasa a compartirse con el hijo: sube
	// el contador del marco y las escribibles se degradan a privadas de
	// solo lectura, también del lado del padre
	for _, directorio := range padre.Tabla.Directorios {
		if directorio == nil {
			continue
		}
		for j := range directorio.Entradas {
			entrada := &directorio.Entradas[j]
			if !entrada.Valido {
				continue
			}

			s.contadorMapeos[entrada.Marco]++
			if entrada.Escribible {
				entrada.Escribible = false
				entrada.Privada = true
			}
		}
	}

	// Copia estructural de la tabla ya degradada: el hijo recibe
	// directorios propios con los mismos valores de entrada
	tablaHijo := s.nuevaTabla()
	for i, directorio := range padre.Tabla.Directorios {
		if directorio == nil {
			continue
		}

		nuevoDirectorio := s.nuevoDirectorio()
		copy(nuevoDirectorio.Entradas, directorio.Entradas)
		tablaHijo.Directorios[i] = nuevoDirectorio
	}

	hijo := &Proceso{
		PID:   pid,
		Tabla: tablaHijo,
	}

	s.colaListos = append(s.colaListos, padre)
	s.procesoActual = hijo
	s.metricas(pid).Forks++

	utils.InfoLog.Info(fmt.Sprintf("## PID: %d - Proceso creado por fork - Padre: %d",
		pid, padre.PID))
}
