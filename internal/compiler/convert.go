package compiler

import (
	"encoding/json"
	"fmt"

	arrv1alpha1 "github.com/concordarr/concordarr-operator/api/v1alpha1"
)

// SecretResolver resolves a Secret key reference to its value.
type SecretResolver func(name, key string) (string, error)

// BuildInput converts a RadarrConfigSpec into a CompileInput. Connection
// details are passed in resolved; field values backed by Secret
// references are resolved through resolve and marked secret.
func BuildInput(spec *arrv1alpha1.RadarrConfigSpec, configName, namespace string, resolve SecretResolver) (CompileInput, error) {
	input := CompileInput{
		ConfigName:         configName,
		Namespace:          namespace,
		URL:                spec.Connection.URL,
		InsecureSkipVerify: spec.Connection.InsecureSkipVerify,
		Tags:               spec.Tags,
	}

	input.QualityDefinitions = convertQualityDefinitions(spec.QualityDefinitions)
	input.RootFolders = convertRootFolders(spec.RootFolders)

	var err error
	input.CustomFormats, err = convertCustomFormats(spec.CustomFormats, resolve)
	if err != nil {
		return input, err
	}
	input.QualityProfiles = convertQualityProfiles(spec.QualityProfiles)
	input.DelayProfiles = convertDelayProfiles(spec.DelayProfiles)
	input.DownloadClients, err = convertDownloadClients(spec.DownloadClients, resolve)
	if err != nil {
		return input, err
	}
	input.Indexers, err = convertIndexers(spec.Indexers, resolve)
	if err != nil {
		return input, err
	}
	input.Notifications, err = convertNotifications(spec.Notifications, resolve)
	if err != nil {
		return input, err
	}
	input.ImportLists, err = convertImportLists(spec.ImportLists, resolve)
	if err != nil {
		return input, err
	}

	return input, nil
}

func convertQualityDefinitions(in *arrv1alpha1.QualityDefinitionsSpec) *QualityDefinitionsInput {
	if in == nil {
		return nil
	}
	out := &QualityDefinitionsInput{TrashID: in.TrashID}
	for _, qd := range in.Definitions {
		out.Definitions = append(out.Definitions, QualityDefinitionInput{
			Quality:       qd.Quality,
			Title:         qd.Title,
			MinSize:       qd.MinSize,
			MaxSize:       qd.MaxSize,
			PreferredSize: qd.PreferredSize,
		})
	}
	return out
}

func convertRootFolders(in *arrv1alpha1.RootFoldersSpec) *RootFoldersInput {
	if in == nil {
		return nil
	}
	return &RootFoldersInput{
		DeleteUnmanaged: in.DeleteUnmanaged,
		Paths:           in.Paths,
	}
}

func convertCustomFormats(in *arrv1alpha1.CustomFormatsSpec, resolve SecretResolver) (*CustomFormatsInput, error) {
	if in == nil {
		return nil, nil
	}
	out := &CustomFormatsInput{DeleteUnmanaged: in.DeleteUnmanaged}
	for _, cf := range in.Definitions {
		converted := CustomFormatInput{
			Name:                      cf.Name,
			TrashID:                   cf.TrashID,
			Score:                     cf.Score,
			IncludeWhenRenaming:       cf.IncludeCustomFormatWhenRenaming,
			DeleteUnmanagedConditions: cf.DeleteUnmanagedConditions,
		}
		for _, cond := range cf.Conditions {
			fields, err := convertFields(cond.Fields, resolve)
			if err != nil {
				return nil, fmt.Errorf("custom format %q condition %q: %w", cf.Name, cond.Name, err)
			}
			converted.Conditions = append(converted.Conditions, ConditionInput{
				Name:           cond.Name,
				Implementation: cond.Implementation,
				Negate:         cond.Negate,
				Required:       cond.Required,
				Fields:         fields,
			})
		}
		out.Definitions = append(out.Definitions, converted)
	}
	return out, nil
}

func convertQualityProfiles(in *arrv1alpha1.QualityProfilesSpec) *QualityProfilesInput {
	if in == nil {
		return nil
	}
	out := &QualityProfilesInput{DeleteUnmanaged: in.DeleteUnmanaged}
	for _, qp := range in.Definitions {
		converted := QualityProfileInput{
			Name:              qp.Name,
			UpgradesAllowed:   qp.UpgradesAllowed,
			UpgradeUntil:      qp.UpgradeUntil,
			MinFormatScore:    qp.MinFormatScore,
			CutoffFormatScore: qp.CutoffFormatScore,
			Language:          qp.Language,
		}
		for _, g := range qp.Qualities {
			converted.Qualities = append(converted.Qualities, QualityGroupInput{
				Name:    g.Name,
				Members: g.Members,
			})
		}
		for _, fs := range qp.FormatScores {
			converted.FormatScores = append(converted.FormatScores, FormatScoreInput{
				Format: fs.Format,
				Score:  fs.Score,
			})
		}
		out.Definitions = append(out.Definitions, converted)
	}
	return out
}

func convertDelayProfiles(in *arrv1alpha1.DelayProfilesSpec) *DelayProfilesInput {
	if in == nil {
		return nil
	}
	out := &DelayProfilesInput{DeleteUnmanaged: in.DeleteUnmanaged}
	for _, dp := range in.Definitions {
		out.Definitions = append(out.Definitions, DelayProfileInput{
			PreferredProtocol:              dp.PreferredProtocol,
			UsenetDelay:                    dp.UsenetDelay,
			TorrentDelay:                   dp.TorrentDelay,
			EnableUsenet:                   boolOrDefault(dp.EnableUsenet, true),
			EnableTorrent:                  boolOrDefault(dp.EnableTorrent, true),
			BypassIfHighestQuality:         dp.BypassIfHighestQuality,
			BypassIfAboveCustomFormatScore: dp.BypassIfAboveCustomFormatScore,
			MinimumCustomFormatScore:       dp.MinimumCustomFormatScore,
			Tags:                           dp.Tags,
		})
	}
	return out
}

func convertDownloadClients(in *arrv1alpha1.DownloadClientsSpec, resolve SecretResolver) (*DownloadClientsInput, error) {
	if in == nil {
		return nil, nil
	}
	out := &DownloadClientsInput{DeleteUnmanaged: in.DeleteUnmanaged}
	for _, dc := range in.Definitions {
		fields, err := convertFields(dc.Fields, resolve)
		if err != nil {
			return nil, fmt.Errorf("download client %q: %w", dc.Name, err)
		}
		out.Definitions = append(out.Definitions, DownloadClientInput{
			Name:                     dc.Name,
			Implementation:           dc.Implementation,
			ConfigContract:           dc.ConfigContract,
			Enable:                   boolOrDefault(dc.Enable, true),
			Priority:                 dc.Priority,
			RemoveCompletedDownloads: boolOrDefault(dc.RemoveCompletedDownloads, true),
			RemoveFailedDownloads:    boolOrDefault(dc.RemoveFailedDownloads, true),
			Tags:                     dc.Tags,
			Fields:                   fields,
		})
	}
	return out, nil
}

func convertIndexers(in *arrv1alpha1.IndexersSpec, resolve SecretResolver) (*IndexersInput, error) {
	if in == nil {
		return nil, nil
	}
	out := &IndexersInput{DeleteUnmanaged: in.DeleteUnmanaged}
	for _, ix := range in.Definitions {
		fields, err := convertFields(ix.Fields, resolve)
		if err != nil {
			return nil, fmt.Errorf("indexer %q: %w", ix.Name, err)
		}
		out.Definitions = append(out.Definitions, IndexerInput{
			Name:                    ix.Name,
			Implementation:          ix.Implementation,
			ConfigContract:          ix.ConfigContract,
			EnableRss:               boolOrDefault(ix.EnableRss, true),
			EnableAutomaticSearch:   boolOrDefault(ix.EnableAutomaticSearch, true),
			EnableInteractiveSearch: boolOrDefault(ix.EnableInteractiveSearch, true),
			Priority:                ix.Priority,
			DownloadClient:          ix.DownloadClient,
			Tags:                    ix.Tags,
			Fields:                  fields,
		})
	}
	return out, nil
}

func convertNotifications(in *arrv1alpha1.NotificationsSpec, resolve SecretResolver) (*NotificationsInput, error) {
	if in == nil {
		return nil, nil
	}
	out := &NotificationsInput{DeleteUnmanaged: in.DeleteUnmanaged}
	for _, n := range in.Definitions {
		fields, err := convertFields(n.Fields, resolve)
		if err != nil {
			return nil, fmt.Errorf("notification %q: %w", n.Name, err)
		}
		out.Definitions = append(out.Definitions, NotificationInput{
			Name:                  n.Name,
			Implementation:        n.Implementation,
			ConfigContract:        n.ConfigContract,
			OnGrab:                n.OnGrab,
			OnDownload:            n.OnDownload,
			OnUpgrade:             n.OnUpgrade,
			OnRename:              n.OnRename,
			OnMovieDelete:         n.OnMovieDelete,
			OnHealthIssue:         n.OnHealthIssue,
			IncludeHealthWarnings: n.IncludeHealthWarnings,
			OnApplicationUpdate:   n.OnApplicationUpdate,
			Tags:                  n.Tags,
			Fields:                fields,
		})
	}
	return out, nil
}

func convertImportLists(in *arrv1alpha1.ImportListsSpec, resolve SecretResolver) (*ImportListsInput, error) {
	if in == nil {
		return nil, nil
	}
	out := &ImportListsInput{DeleteUnmanaged: in.DeleteUnmanaged}
	for _, l := range in.Definitions {
		fields, err := convertFields(l.Fields, resolve)
		if err != nil {
			return nil, fmt.Errorf("import list %q: %w", l.Name, err)
		}
		out.Definitions = append(out.Definitions, ImportListInput{
			Name:                l.Name,
			Implementation:      l.Implementation,
			ConfigContract:      l.ConfigContract,
			Enable:              l.Enable,
			EnableAuto:          boolOrDefault(l.EnableAuto, true),
			SearchOnAdd:         l.SearchOnAdd,
			Monitor:             stringOrDefault(l.Monitor, "movieOnly"),
			MinimumAvailability: stringOrDefault(l.MinimumAvailability, "announced"),
			QualityProfile:      l.QualityProfile,
			RootFolderPath:      l.RootFolderPath,
			Tags:                l.Tags,
			Fields:              fields,
		})
	}
	return out, nil
}

// convertFields converts CRD field entries. Literal JSON values are
// decoded into plain Go values; Secret-backed values are resolved and
// marked secret so comparison always re-sends them.
func convertFields(in []arrv1alpha1.FieldSpec, resolve SecretResolver) ([]FieldInput, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make([]FieldInput, 0, len(in))
	for _, f := range in {
		switch {
		case f.ValueFrom != nil:
			if resolve == nil {
				return nil, fmt.Errorf("field %q references a secret but no resolver is available", f.Name)
			}
			key := f.ValueFrom.Key
			if key == "" {
				key = "apiKey"
			}
			value, err := resolve(f.ValueFrom.Name, key)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", f.Name, err)
			}
			out = append(out, FieldInput{Name: f.Name, Value: value, Secret: true})
		case f.Value != nil:
			var value interface{}
			if err := json.Unmarshal(f.Value.Raw, &value); err != nil {
				return nil, fmt.Errorf("field %q: invalid value: %w", f.Name, err)
			}
			out = append(out, FieldInput{Name: f.Name, Value: value})
		default:
			return nil, fmt.Errorf("field %q declares neither value nor valueFrom", f.Name)
		}
	}
	return out, nil
}

func boolOrDefault(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func stringOrDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
