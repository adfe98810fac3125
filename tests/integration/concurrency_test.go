package integration

import (
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentTips verifies the per-DJ in-flight guard. While one tip to a
// DJ is waiting on the wallet prompt, every other submission to that DJ is
// rejected with TIP_002 instead of opening a second prompt. Tips to other
// DJs are unaffected, and the guard is free again once the wallet answers.
func TestConcurrentTips(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	connectWallet(t, app)
	release := app.wallet.holdTransfers()
	defer release()

	// Step 1: start a tip and wait until the wallet is prompting.
	type outcome struct {
		status int
		res    tipResult
	}
	first := make(chan outcome, 1)
	go func() {
		status, env := sendTip(t, app, "seed-9", 1000, "first")
		var res tipResult
		if status == http.StatusOK {
			decodeData(t, env, &res)
		}
		first <- outcome{status: status, res: res}
	}()

	select {
	case <-app.wallet.entered:
	case <-time.After(5 * time.Second):
		t.Fatal("wallet was never prompted")
	}

	// Step 2: fire concurrent tips at the same DJ while the prompt is open.
	const concurrency = 10
	var (
		wg       sync.WaitGroup
		rejected atomic.Int32
		other    atomic.Int32
	)
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			status, env := sendTip(t, app, "seed-9", 500, "")
			if status == http.StatusConflict && env.ErrorCode == "TIP_002" {
				rejected.Add(1)
				return
			}
			other.Add(1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(concurrency), rejected.Load(), "all overlapping tips should be rejected")
	assert.Zero(t, other.Load())

	// Step 3: let the wallet answer; the first tip completes normally.
	release()
	select {
	case out := <-first:
		require.Equal(t, http.StatusOK, out.status)
		assert.True(t, out.res.Succeeded)
		assert.Equal(t, "0xfeedbeef", out.res.TransactionID)
	case <-time.After(5 * time.Second):
		t.Fatal("first tip never completed")
	}

	// Step 4: the guard is free again.
	status, env := sendTip(t, app, "seed-9", 500, "")
	require.Equal(t, http.StatusOK, status)
	var res tipResult
	decodeData(t, env, &res)
	assert.True(t, res.Succeeded)

	// Only the two tips that reached the wallet were recorded.
	assert.Equal(t, 2, app.tips.count())
}

// TestConcurrentTips_DifferentDJs checks that the guard is scoped per DJ.
func TestConcurrentTips_DifferentDJs(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	connectWallet(t, app)
	release := app.wallet.holdTransfers()

	djs := []string{"seed-1", "seed-2", "seed-3", "seed-4", "seed-5"}
	statuses := make([]int, len(djs))

	var wg sync.WaitGroup
	for i, id := range djs {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			statuses[i], _ = sendTip(t, app, id, 100, "")
		}(i, id)
	}

	// Every DJ gets its own prompt before any of them is answered.
	for range djs {
		select {
		case <-app.wallet.entered:
		case <-time.After(5 * time.Second):
			release()
			t.Fatal("not every tip reached the wallet")
		}
	}
	release()
	wg.Wait()

	for i, status := range statuses {
		assert.Equal(t, http.StatusOK, status, "tip to %s", djs[i])
	}
	assert.Equal(t, len(djs), app.tips.count())
}
