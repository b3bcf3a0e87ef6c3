package syncing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_AddRejeitaSegundaExecucaoDaConta(t *testing.T) {
	registry := NewRegistry(time.Hour)

	first := NewJob("job-1", 512)
	require.NoError(t, registry.Add(first))

	second := NewJob("job-2", 512)
	err := registry.Add(second)

	assert.ErrorIs(t, err, ErrSyncAlreadyRunning)
}

func TestRegistry_ContasDiferentesRodamJuntas(t *testing.T) {
	registry := NewRegistry(time.Hour)

	require.NoError(t, registry.Add(NewJob("job-1", 512)))
	require.NoError(t, registry.Add(NewJob("job-2", 513)))
}

func TestRegistry_ReleaseLiberaSlotMasMantemConsulta(t *testing.T) {
	registry := NewRegistry(time.Hour)

	job := NewJob("job-1", 512)
	require.NoError(t, registry.Add(job))
	job.Emit(StepDone, "")
	registry.Release(job)

	// slot liberado: outra execução da mesma conta pode entrar
	require.NoError(t, registry.Add(NewJob("job-2", 512)))

	// o job terminado ainda é consultável
	got, ok := registry.Get("job-1")
	require.True(t, ok)
	assert.Equal(t, StepDone, got.Status().Step)
}

func TestRegistry_JobTerminadoNaoContaComoAtivo(t *testing.T) {
	registry := NewRegistry(time.Hour)

	job := NewJob("job-1", 512)
	require.NoError(t, registry.Add(job))
	job.Emit(StepError, "falha")

	_, running := registry.Running(512)
	assert.False(t, running)

	// conta com job terminal sem Release ainda aceita nova execução
	require.NoError(t, registry.Add(NewJob("job-2", 512)))
}

func TestRegistry_List(t *testing.T) {
	registry := NewRegistry(time.Hour)
	require.NoError(t, registry.Add(NewJob("job-1", 512)))
	require.NoError(t, registry.Add(NewJob("job-2", 513)))

	statuses := registry.List()

	assert.Len(t, statuses, 2)
}

func TestRegistry_EvictExpiredRemoveTerminaisVencidos(t *testing.T) {
	registry := NewRegistry(time.Nanosecond)

	finished := NewJob("job-1", 512)
	require.NoError(t, registry.Add(finished))
	finished.Emit(StepDone, "")
	registry.Release(finished)

	active := NewJob("job-2", 513)
	require.NoError(t, registry.Add(active))

	time.Sleep(5 * time.Millisecond)
	registry.evictExpired()

	_, ok := registry.Get("job-1")
	assert.False(t, ok)
	_, ok = registry.Get("job-2")
	assert.True(t, ok)
}
