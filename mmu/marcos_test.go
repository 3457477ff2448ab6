package mmu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAsignarPagina_MarcosLibres_EligeElMenor(t *testing.T) {
	s := nuevaSimDePrueba()

	marco, err := s.AsignarPagina(0, PermisoLectura|PermisoEscritura)
	assert.Nil(t, err)
	assert.Equal(t, 0, marco)

	marco, err = s.AsignarPagina(1, PermisoLectura|PermisoEscritura)
	assert.Nil(t, err)
	assert.Equal(t, 1, marco)
}

func TestAsignarPagina_MarcoIntermedioLiberado_LoReutiliza(t *testing.T) {
	s := nuevaSimDePrueba()

	s.AsignarPagina(0, PermisoLectura|PermisoEscritura)
	s.AsignarPagina(1, PermisoLectura|PermisoEscritura)
	s.AsignarPagina(2, PermisoLectura|PermisoEscritura)
	s.LiberarPagina(1)

	marco, err := s.AsignarPagina(3, PermisoLectura)
	assert.Nil(t, err)
	assert.Equal(t, 1, marco, "debe reutilizar el marco liberado más bajo")
}

func TestAsignarPagina_SoloLectura_NoEscribible(t *testing.T) {
	s := nuevaSimDePrueba()

	s.AsignarPagina(5, PermisoLectura)

	entrada, existe := s.BuscarEntrada(5)
	assert.True(t, existe)
	assert.True(t, entrada.Valido)
	assert.False(t, entrada.Escribible)
	assert.False(t, entrada.Privada)
}

func TestAsignarPagina_SinMarcos_Fail(t *testing.T) {
	s := nuevaSimDePrueba()

	for vpn := 0; vpn < 4; vpn++ {
		_, err := s.AsignarPagina(vpn, PermisoLectura|PermisoEscritura)
		assert.Nil(t, err)
	}

	_, err := s.AsignarPagina(4, PermisoLectura|PermisoEscritura)
	assert.EqualError(t, err, ErrSinMarcos.Error())

	// El fallo no debe mutar nada
	assert.Equal(t, 0, s.MarcosLibres())
	entrada, existe := s.BuscarEntrada(4)
	if existe {
		assert.False(t, entrada.Valido)
	}
	for marco := 0; marco < 4; marco++ {
		assert.Equal(t, 1, s.ContadorMapeos(marco))
	}
}

func TestLiberarPagina_RoundTrip_VuelveAlEstadoInicial(t *testing.T) {
	s := nuevaSimDePrueba()

	marco, err := s.AsignarPagina(9, PermisoLectura|PermisoEscritura)
	assert.Nil(t, err)
	assert.Equal(t, 1, s.ContadorMapeos(marco))

	s.LiberarPagina(9)

	assert.Equal(t, 0, s.ContadorMapeos(marco))
	entrada, existe := s.BuscarEntrada(9)
	assert.True(t, existe, "liberar limpia la entrada, no el directorio")
	assert.Equal(t, EntradaPagina{}, entrada)
	assert.Equal(t, 4, s.MarcosLibres())
}

func TestLiberarPagina_NuncaMapeada_NoOp(t *testing.T) {
	s := nuevaSimDePrueba()

	s.LiberarPagina(33)

	assert.Equal(t, 4, s.MarcosLibres())
	_, existe := s.BuscarEntrada(33)
	assert.False(t, existe)
}

func TestLiberarPagina_EntradaInvalida_NoOp(t *testing.T) {
	s := nuevaSimDePrueba()

	s.AsignarPagina(0, PermisoLectura|PermisoEscritura)
	s.LiberarPagina(1) // mismo directorio, entrada nunca asignada

	assert.Equal(t, 3, s.MarcosLibres())
	assert.Equal(t, 1, s.ContadorMapeos(0))
}

func TestContadorMapeos_InvarianteTrasOperaciones(t *testing.T) {
	s := nuevaSimDePrueba()

	s.AsignarPagina(0, PermisoLectura|PermisoEscritura)
	s.AsignarPagina(17, PermisoLectura)
	s.CambiarProceso(1) // fork: todo marco compartido suma un mapeo
	s.AtenderFallo(0, PermisoLectura|PermisoEscritura)

	// contadorMapeos[f] == cantidad de entradas válidas que apuntan a f,
	// sumando todas las tablas
	conteo := make(map[int]int)
	contarTabla := func(tabla *TablaPaginas) {
		for _, directorio := range tabla.Directorios {
			if directorio == nil {
				continue
			}
			for _, entrada := range directorio.Entradas {
				if entrada.Valido {
					conteo[entrada.Marco]++
				}
			}
		}
	}

	contarTabla(&s.procesoActual.Tabla)
	for _, p := range s.colaListos {
		contarTabla(&p.Tabla)
	}

	for marco := 0; marco < 4; marco++ {
		assert.Equal(t, conteo[marco], s.ContadorMapeos(marco), "marco %d", marco)
	}
}
