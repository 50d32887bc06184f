package compiler

import (
	"fmt"

	irv1 "github.com/concordarr/concordarr-operator/internal/ir/v1"
)

// downloadClientProtocols maps download client implementations to their
// transfer protocol.
var downloadClientProtocols = map[string]string{
	"Aria2":            irv1.ProtocolTorrent,
	"Deluge":           irv1.ProtocolTorrent,
	"DownloadStation":  irv1.ProtocolTorrent,
	"Flood":            irv1.ProtocolTorrent,
	"FreeboxDownload":  irv1.ProtocolTorrent,
	"Hadouken":         irv1.ProtocolTorrent,
	"QBittorrent":      irv1.ProtocolTorrent,
	"RTorrent":         irv1.ProtocolTorrent,
	"TorrentBlackhole": irv1.ProtocolTorrent,
	"Transmission":     irv1.ProtocolTorrent,
	"UTorrent":         irv1.ProtocolTorrent,
	"Vuze":             irv1.ProtocolTorrent,
	"NzbGet":           irv1.ProtocolUsenet,
	"Nzbvortex":        irv1.ProtocolUsenet,
	"Pneumatic":        irv1.ProtocolUsenet,
	"Sabnzbd":          irv1.ProtocolUsenet,
	"UsenetBlackhole":  irv1.ProtocolUsenet,
}

// indexerProtocols maps indexer implementations to their protocol.
var indexerProtocols = map[string]string{
	"FileList":          irv1.ProtocolTorrent,
	"HDBits":            irv1.ProtocolTorrent,
	"IPTorrents":        irv1.ProtocolTorrent,
	"Nyaa":              irv1.ProtocolTorrent,
	"PassThePopcorn":    irv1.ProtocolTorrent,
	"TorrentPotato":     irv1.ProtocolTorrent,
	"TorrentRssIndexer": irv1.ProtocolTorrent,
	"Torznab":           irv1.ProtocolTorrent,
	"Newznab":           irv1.ProtocolUsenet,
}

// configContract returns the settings contract for an implementation,
// following the remote's "<Implementation>Settings" convention.
func configContract(declared, implementation string) string {
	if declared != "" {
		return declared
	}
	return implementation + "Settings"
}

// compileDownloadClients compiles download client definitions. The
// protocol is derived from the implementation; an implementation outside
// the supported set is a hard error since the adapter could not encode it.
func (c *Compiler) compileDownloadClients(in *DownloadClientsInput) (*irv1.DownloadClientsIR, error) {
	if in == nil {
		return nil, nil
	}

	out := &irv1.DownloadClientsIR{DeleteUnmanaged: in.DeleteUnmanaged}
	for _, dc := range in.Definitions {
		protocol, ok := downloadClientProtocols[dc.Implementation]
		if !ok {
			return nil, fmt.Errorf("download client %q: unsupported implementation %q", dc.Name, dc.Implementation)
		}
		out.Definitions = append(out.Definitions, irv1.DownloadClientIR{
			Name:                     dc.Name,
			Implementation:           dc.Implementation,
			ConfigContract:           configContract(dc.ConfigContract, dc.Implementation),
			Protocol:                 protocol,
			Enable:                   dc.Enable,
			Priority:                 dc.Priority,
			RemoveCompletedDownloads: dc.RemoveCompletedDownloads,
			RemoveFailedDownloads:    dc.RemoveFailedDownloads,
			Tags:                     dc.Tags,
			Fields:                   fieldsToIR(dc.Fields),
		})
	}
	return out, nil
}

// compileIndexers compiles indexer definitions. A download client
// reference must name a declared client so dangling pins are caught at
// compile time rather than at apply time.
func (c *Compiler) compileIndexers(in *IndexersInput, clients *DownloadClientsInput) (*irv1.IndexersIR, error) {
	if in == nil {
		return nil, nil
	}

	declaredClients := make(map[string]bool)
	if clients != nil {
		for _, dc := range clients.Definitions {
			declaredClients[dc.Name] = true
		}
	}

	out := &irv1.IndexersIR{DeleteUnmanaged: in.DeleteUnmanaged}
	for _, ix := range in.Definitions {
		protocol, ok := indexerProtocols[ix.Implementation]
		if !ok {
			return nil, fmt.Errorf("indexer %q: unsupported implementation %q", ix.Name, ix.Implementation)
		}
		if ix.DownloadClient != "" && !declaredClients[ix.DownloadClient] {
			return nil, fmt.Errorf("indexer %q references undeclared download client %q", ix.Name, ix.DownloadClient)
		}
		out.Definitions = append(out.Definitions, irv1.IndexerIR{
			Name:                    ix.Name,
			Implementation:          ix.Implementation,
			ConfigContract:          configContract(ix.ConfigContract, ix.Implementation),
			Protocol:                protocol,
			EnableRss:               ix.EnableRss,
			EnableAutomaticSearch:   ix.EnableAutomaticSearch,
			EnableInteractiveSearch: ix.EnableInteractiveSearch,
			Priority:                ix.Priority,
			DownloadClient:          ix.DownloadClient,
			Tags:                    ix.Tags,
			Fields:                  fieldsToIR(ix.Fields),
		})
	}
	return out, nil
}

// compileImportLists compiles import list definitions. The quality
// profile reference stays symbolic: it may name a declared profile or one
// that already exists on the remote, so the adapter resolves it at apply
// time.
func (c *Compiler) compileImportLists(in *ImportListsInput) *irv1.ImportListsIR {
	if in == nil {
		return nil
	}

	out := &irv1.ImportListsIR{DeleteUnmanaged: in.DeleteUnmanaged}
	for _, l := range in.Definitions {
		out.Definitions = append(out.Definitions, irv1.ImportListIR{
			Name:                l.Name,
			Implementation:      l.Implementation,
			ConfigContract:      configContract(l.ConfigContract, l.Implementation),
			Enable:              l.Enable,
			EnableAuto:          l.EnableAuto,
			SearchOnAdd:         l.SearchOnAdd,
			Monitor:             l.Monitor,
			MinimumAvailability: l.MinimumAvailability,
			QualityProfile:      l.QualityProfile,
			RootFolderPath:      l.RootFolderPath,
			Tags:                l.Tags,
			Fields:              fieldsToIR(l.Fields),
		})
	}
	return out
}

// compileNotifications compiles notification definitions.
func (c *Compiler) compileNotifications(in *NotificationsInput) *irv1.NotificationsIR {
	if in == nil {
		return nil
	}

	out := &irv1.NotificationsIR{DeleteUnmanaged: in.DeleteUnmanaged}
	for _, n := range in.Definitions {
		out.Definitions = append(out.Definitions, irv1.NotificationIR{
			Name:                  n.Name,
			Implementation:        n.Implementation,
			ConfigContract:        configContract(n.ConfigContract, n.Implementation),
			OnGrab:                n.OnGrab,
			OnDownload:            n.OnDownload,
			OnUpgrade:             n.OnUpgrade,
			OnRename:              n.OnRename,
			OnMovieDelete:         n.OnMovieDelete,
			OnHealthIssue:         n.OnHealthIssue,
			IncludeHealthWarnings: n.IncludeHealthWarnings,
			OnApplicationUpdate:   n.OnApplicationUpdate,
			Tags:                  n.Tags,
			Fields:                fieldsToIR(n.Fields),
		})
	}
	return out
}
