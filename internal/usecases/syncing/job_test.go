package syncing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJob_EmitAtualizaEstadoEPublicaEvento(t *testing.T) {
	job := NewJob("abc123", 512)

	job.Emit(StepFetchingEntities, "contas e campanhas")

	status := job.Status()
	assert.Equal(t, StepFetchingEntities, status.Step)
	assert.Equal(t, "contas e campanhas", status.Detail)
	assert.Nil(t, status.FinishedAt)

	select {
	case ev := <-job.Events():
		assert.Equal(t, StepFetchingEntities, ev.Step)
		assert.Equal(t, "contas e campanhas", ev.Detail)
	default:
		t.Fatal("evento não publicado no canal")
	}
}

func TestJob_EtapaTerminalFechaCanais(t *testing.T) {
	job := NewJob("abc123", 512)

	job.Emit(StepDone, "")

	select {
	case <-job.Done():
	case <-time.After(time.Second):
		t.Fatal("canal done não foi fechado")
	}

	assert.True(t, job.Finished())
	require.NotNil(t, job.Status().FinishedAt)

	// o canal de eventos drena o terminal e depois fecha
	ev, ok := <-job.Events()
	assert.True(t, ok)
	assert.Equal(t, StepDone, ev.Step)
	_, ok = <-job.Events()
	assert.False(t, ok)
}

func TestJob_EmitDepoisDoTerminalViraNoOp(t *testing.T) {
	job := NewJob("abc123", 512)

	job.Emit(StepError, "falha na API")
	job.Emit(StepFetchingMetrics, "não deve mudar nada")

	status := job.Status()
	assert.Equal(t, StepError, status.Step)
	assert.Equal(t, "falha na API", status.Detail)
}

func TestJob_HeartbeatNaoMudaEtapa(t *testing.T) {
	job := NewJob("abc123", 512)
	job.Emit(StepPersisting, "gravando snapshot")

	job.Emit(StepHeartbeat, "")

	status := job.Status()
	assert.Equal(t, StepPersisting, status.Step)
	assert.Equal(t, "gravando snapshot", status.Detail)
}

func TestJob_ConsumidorLentoNaoBloqueia(t *testing.T) {
	job := NewJob("abc123", 512)

	// enche o buffer e segue emitindo; nada pode travar
	for i := 0; i < 200; i++ {
		job.Emit(StepFetchingMetrics, "lote")
	}

	assert.Equal(t, StepFetchingMetrics, job.Status().Step)
}
