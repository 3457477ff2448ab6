package mmu

import (
	"github.com/sisoputnfrba/tp-2025-2c-LosPaginadores/utils"
)

// NuevaSimulacion inicializa el estado completo del simulador: todos los
// marcos libres, un proceso inicial en ejecución con la tabla vacía y la
// cola de listos vacía.
func NuevaSimulacion(config ConfigMMU, pidInicial int) *Simulacion {
	utils.InfoLog.Info("Inicializando simulación de MMU",
		"cantidad_marcos", config.CantidadMarcos,
		"entradas_por_tabla", config.EntradasPorTabla,
		"pid_inicial", pidInicial)

	s := &Simulacion{
		config:             config,
		colaListos:         []*Proceso{},
		contadorMapeos:     make([]int, config.CantidadMarcos),
		metricasPorProceso: make(map[int]*MetricasProceso),
	}

	s.procesoActual = &Proceso{
		PID:   pidInicial,
		Tabla: s.nuevaTabla(),
	}

	utils.InfoLog.Info("Simulación inicializada", "total_marcos", len(s.contadorMapeos))
	return s
}

// nuevaTabla crea una tabla de páginas vacía, sin directorios
func (s *Simulacion) nuevaTabla() TablaPaginas {
	return TablaPaginas{
		Directorios: make([]*DirectorioPaginas, s.config.EntradasPorTabla),
	}
}

// nuevoDirectorio crea un directorio con todas sus entradas inválidas
func (s *Simulacion) nuevoDirectorio() *DirectorioPaginas {
	return &DirectorioPaginas{
		Entradas: make([]EntradaPagina, s.config.EntradasPorTabla),
	}
}

// TablaActiva devuelve la tabla del proceso en ejecución. Cumple el rol
// del registro base de tabla de páginas: siempre refiere a la tabla del
// proceso actual.
func (s *Simulacion) TablaActiva() *TablaPaginas {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.procesoActual == nil {
		return nil
	}
	return &s.procesoActual.Tabla
}

// ProcesoActual devuelve el PID del proceso en ejecución
func (s *Simulacion) ProcesoActual() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.procesoActual == nil {
		return -1
	}
	return s.procesoActual.PID
}

// ProcesosListos devuelve los PID encolados en la cola de listos, en orden
func (s *Simulacion) ProcesosListos() []int {
	s.mu.Lock()
	defer s.mu.Unlock()

	pids := make([]int, 0, len(s.colaListos))
	for _, p := range s.colaListos {
		pids = append(pids, p.PID)
	}
	return pids
}

// BuscarEntrada devuelve una copia de la entrada para la página del
// proceso actual. El segundo resultado es false si el directorio del
// rango no existe.
func (s *Simulacion) BuscarEntrada(vpn int) (EntradaPagina, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buscarEntrada(vpn)
}

func (s *Simulacion) buscarEntrada(vpn int) (EntradaPagina, bool) {
	if s.procesoActual == nil || !s.vpnValido(vpn) {
		return EntradaPagina{}, false
	}

	directorio := s.procesoActual.Tabla.Directorios[vpn/s.config.EntradasPorTabla]
	if directorio == nil {
		return EntradaPagina{}, false
	}
	return directorio.Entradas[vpn%s.config.EntradasPorTabla], true
}

// vpnValido indica si la página cae dentro del espacio direccionable:
// EntradasPorTabla directorios de EntradasPorTabla entradas
func (s *Simulacion) vpnValido(vpn int) bool {
	return vpn >= 0 && vpn < s.config.EntradasPorTabla*s.config.EntradasPorTabla
}

// ContadorMapeos devuelve cuántas entradas válidas apuntan al marco
func (s *Simulacion) ContadorMapeos(marco int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if marco < 0 || marco >= len(s.contadorMapeos) {
		return 0
	}
	return s.contadorMapeos[marco]
}

// MarcosLibres cuenta los marcos sin mapeos
func (s *Simulacion) MarcosLibres() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.marcosLibres()
}

func (s *Simulacion) marcosLibres() int {
	count := 0
	for _, mapeos := range s.contadorMapeos {
		if mapeos == 0 {
			count++
		}
	}
	return count
}
