package mmu

// MetricasProceso acumula estadísticas de la actividad de memoria de un
// proceso a lo largo de la simulación
type MetricasProceso struct {
	FallosAtendidos    int
	AsignacionesMarco  int
	LiberacionesPagina int
	DuplicacionesCOW   int
	PromocionesCOW     int
	CambiosContexto    int
	Forks              int
}

// metricas devuelve las métricas del proceso, creándolas si no existen.
// Se llama con el mutex tomado.
func (s *Simulacion) metricas(pid int) *MetricasProceso {
	m, existe := s.metricasPorProceso[pid]
	if !existe {
		m = &MetricasProceso{}
		s.metricasPorProceso[pid] = m
	}
	return m
}

// Metricas devuelve una copia de las métricas acumuladas para el PID
func (s *Simulacion) Metricas(pid int) MetricasProceso {
	s.mu.Lock()
	defer s.mu.Unlock()

	if m, existe := s.metricasPorProceso[pid]; existe {
		return *m
	}
	return MetricasProceso{}
}
