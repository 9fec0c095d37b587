package e2e

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adrper79-dot/CallMonitor-sub008/internal/locate"
	"github.com/adrper79-dot/CallMonitor-sub008/internal/mocknet"
)

func TestVoiceOperationsShowsCampaigns(t *testing.T) {
	r := newRig(t)
	require.NoError(t, r.Session.LoginManager())

	require.NoError(t, r.Browser.Navigate("/voice-operations"))
	require.NoError(t, r.Browser.WaitForIdle())

	r.Check.RequireVisible(locate.Target{
		Desc:   "voice operations panel",
		TestID: "voice-operations",
		CSS:    "[data-testid='voice-operations'], main",
	})
	// Either real campaigns or the empty-state prompt must render.
	r.Check.RequirePageText(`campaign`)
}

func TestVoiceOperationsEmptyState(t *testing.T) {
	r := newRig(t)
	require.NoError(t, r.Session.LoginManager())

	require.NoError(t, r.Browser.MockRoutes(mocknet.EmptyCampaigns()))
	require.NoError(t, r.Browser.Navigate("/voice-operations"))
	require.NoError(t, r.Browser.WaitForIdle())

	r.Check.RequirePageText(emptyCampaignsPattern)
}

func TestVoiceConfigTranslation(t *testing.T) {
	r := newRig(t)
	require.NoError(t, r.Session.LoginManager())

	require.NoError(t, r.Browser.Navigate("/voice-operations"))
	require.NoError(t, r.Browser.WaitForIdle())

	// The translation modulation panel ships behind a plan flag.
	did, err := r.Resolve.CheckIfVisible(locate.Target{
		Desc:  "translation toggle",
		Label: "Translate",
		CSS:   "input[name='translate'], [data-testid='voice-translate']",
	})
	require.NoError(t, err)
	if !did {
		t.Log("translation modulations not available on this plan")
		return
	}

	require.NoError(t, r.Resolve.SelectOption(locate.Target{
		Desc:  "translate from",
		Label: "From",
		CSS:   "select[name='translate_from']",
	}, "en"))
	require.NoError(t, r.Resolve.SelectOption(locate.Target{
		Desc:  "translate to",
		Label: "To",
		CSS:   "select[name='translate_to']",
	}, "es"))
	require.NoError(t, r.Resolve.Click(locate.Target{
		Desc: "save voice config",
		Role: "button", RoleName: "Save",
		CSS: "button[type='submit']",
	}))

	r.Check.RequirePageText(`saved|updated`)
}

func TestVoiceConfigRejectsInvalidLanguages(t *testing.T) {
	r := newRig(t)
	require.NoError(t, r.Session.LoginManager())

	// Force the backend's INVALID_LANGUAGE rejection so the error path
	// renders deterministically.
	rt := mocknet.NewRouteTable()
	rt.RegisterJSON("**/api/voice/config", 400,
		`{"error":{"code":"INVALID_LANGUAGE","message":"Invalid language codes for translation"}}`)
	require.NoError(t, r.Browser.MockRoutes(rt))

	require.NoError(t, r.Browser.Navigate("/voice-operations"))
	require.NoError(t, r.Browser.WaitForIdle())

	did, err := r.Resolve.CheckIfVisible(locate.Target{
		Desc:  "translation toggle",
		Label: "Translate",
		CSS:   "input[name='translate'], [data-testid='voice-translate']",
	})
	require.NoError(t, err)
	if !did {
		t.Skip("translation modulations not available on this plan")
	}

	require.NoError(t, r.Resolve.Click(locate.Target{
		Desc: "save voice config",
		Role: "button", RoleName: "Save",
		CSS: "button[type='submit']",
	}))

	r.Check.RequireTextMatches(locate.Target{
		Desc: "voice config error",
		Role: "alert",
		CSS:  "[role='alert'], .error-message",
	}, `invalid language|`+errorPattern)
}
