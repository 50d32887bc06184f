package compiler

import (
	"fmt"

	irv1 "github.com/concordarr/concordarr-operator/internal/ir/v1"
)

// compileRootFolders compiles root folder paths.
func (c *Compiler) compileRootFolders(in *RootFoldersInput) *irv1.RootFoldersIR {
	if in == nil {
		return nil
	}
	out := &irv1.RootFoldersIR{DeleteUnmanaged: in.DeleteUnmanaged}
	for _, path := range in.Paths {
		out.Definitions = append(out.Definitions, irv1.RootFolderIR{Path: path})
	}
	return out
}

// compileQualityProfiles compiles quality profiles. Format scores with no
// explicit value fall back to the referenced format's default score,
// which requires the format to be declared.
func (c *Compiler) compileQualityProfiles(in *QualityProfilesInput, formats *irv1.CustomFormatsIR) (*irv1.QualityProfilesIR, error) {
	if in == nil {
		return nil, nil
	}

	defaultScores := make(map[string]int)
	if formats != nil {
		for _, cf := range formats.Definitions {
			defaultScores[cf.Name] = cf.DefaultScore
		}
	}

	out := &irv1.QualityProfilesIR{DeleteUnmanaged: in.DeleteUnmanaged}
	for _, qp := range in.Definitions {
		compiled, err := compileQualityProfile(qp, defaultScores)
		if err != nil {
			return nil, err
		}
		out.Definitions = append(out.Definitions, *compiled)
	}
	return out, nil
}

func compileQualityProfile(qp QualityProfileInput, defaultScores map[string]int) (*irv1.QualityProfileIR, error) {
	if qp.UpgradesAllowed && qp.UpgradeUntil == "" {
		return nil, fmt.Errorf("quality profile %q allows upgrades but declares no upgradeUntil", qp.Name)
	}
	if len(qp.Qualities) == 0 {
		return nil, fmt.Errorf("quality profile %q declares no qualities", qp.Name)
	}

	out := &irv1.QualityProfileIR{
		Name:              qp.Name,
		UpgradesAllowed:   qp.UpgradesAllowed,
		UpgradeUntil:      qp.UpgradeUntil,
		MinFormatScore:    qp.MinFormatScore,
		CutoffFormatScore: qp.CutoffFormatScore,
		Language:          qp.Language,
	}

	for _, g := range qp.Qualities {
		out.Qualities = append(out.Qualities, irv1.QualityGroupIR{
			Name:    g.Name,
			Members: g.Members,
		})
	}

	for _, fs := range qp.FormatScores {
		score := 0
		if fs.Score != nil {
			score = *fs.Score
		} else {
			var ok bool
			score, ok = defaultScores[fs.Format]
			if !ok {
				return nil, fmt.Errorf("quality profile %q scores custom format %q which is not declared and has no explicit score", qp.Name, fs.Format)
			}
		}
		out.FormatScores = append(out.FormatScores, irv1.FormatScoreIR{
			Format: fs.Format,
			Score:  score,
		})
	}

	return out, nil
}

// compileDelayProfiles compiles the ordered delay profile list.
func (c *Compiler) compileDelayProfiles(in *DelayProfilesInput) *irv1.DelayProfilesIR {
	if in == nil {
		return nil
	}
	out := &irv1.DelayProfilesIR{DeleteUnmanaged: in.DeleteUnmanaged}
	for _, dp := range in.Definitions {
		out.Definitions = append(out.Definitions, irv1.DelayProfileIR{
			PreferredProtocol:              dp.PreferredProtocol,
			UsenetDelay:                    dp.UsenetDelay,
			TorrentDelay:                   dp.TorrentDelay,
			EnableUsenet:                   dp.EnableUsenet,
			EnableTorrent:                  dp.EnableTorrent,
			BypassIfHighestQuality:         dp.BypassIfHighestQuality,
			BypassIfAboveCustomFormatScore: dp.BypassIfAboveCustomFormatScore,
			MinimumCustomFormatScore:       dp.MinimumCustomFormatScore,
			Tags:                           dp.Tags,
		})
	}
	return out
}
