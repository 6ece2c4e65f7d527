// Package message defines the closed set of command and response variants
// exchanged over the STA engine channel, and the core record types that
// appear inside them. It owns no encoding or transport logic; see codec and
// transport for those.
package message

// Tag identifies a message variant. Zero means "no message". Tags are part
// of the wire contract: once assigned, a tag's meaning is frozen for a given
// encoder id (see codec.EncoderID).
type Tag uint16

// Tag values, in the order the original engine declared them. Gaps are not
// introduced deliberately, but nothing depends on the numeric values being
// contiguous, only stable.
const (
	NoMessage Tag = iota

	// Lifecycle.
	TagExit
	TagPing
	TagSetHierSeparator

	// Ingestion.
	TagReadLibFile
	TagReadLibStream
	TagClearLibs
	TagReadVerilogFile
	TagReadVerilogStream
	TagLinkTop
	TagClearNetlistBlocks
	TagCreateNetlist
	TagGetGraphData
	TagConnectContextPinNet
	TagDisconnectContextPinNet
	TagReadSpefFile
	TagReadSpefStream
	TagSetGroupNetLumpCap
	TagReadSdfFile
	TagReadSdfStream
	TagWriteSdfFile
	TagGetGraphSlacksData
	TagSetArcsDelay

	// Constraints.
	TagCreateClock
	TagCreateGeneratedClock
	TagSetClockGroups
	TagSetClockLatency
	TagSetInterClockUncertainty
	TagSetSingleClockUncertainty
	TagSetSinglePinUncertainty
	TagSetSinglePortDelay
	TagSetInPortTransition
	TagSetFalsePath
	TagSetMinMaxDelay
	TagSetMulticyclePath
	TagDisableSinglePinTiming
	TagDisableInstTiming
	TagSetGlobalTimingDerate

	// Queries.
	TagReportTiming
	TagGetDesignStats

	// Responses.
	TagExecutionStatus
	TagGraphMap
	TagGraphSlacks
	TagDesignStats
)

var tagName = map[Tag]string{
	NoMessage:                    "NoMessage",
	TagExit:                      "Exit",
	TagPing:                      "Ping",
	TagSetHierSeparator:          "SetHierSeparator",
	TagReadLibFile:               "ReadLibFile",
	TagReadLibStream:             "ReadLibStream",
	TagClearLibs:                 "ClearLibs",
	TagReadVerilogFile:           "ReadVerilogFile",
	TagReadVerilogStream:         "ReadVerilogStream",
	TagLinkTop:                   "LinkTop",
	TagClearNetlistBlocks:        "ClearNetlistBlocks",
	TagCreateNetlist:             "CreateNetlist",
	TagGetGraphData:              "GetGraphData",
	TagConnectContextPinNet:      "ConnectContextPinNet",
	TagDisconnectContextPinNet:   "DisconnectContextPinNet",
	TagReadSpefFile:              "ReadSpefFile",
	TagReadSpefStream:            "ReadSpefStream",
	TagSetGroupNetLumpCap:        "SetGroupNetLumpCap",
	TagReadSdfFile:               "ReadSdfFile",
	TagReadSdfStream:             "ReadSdfStream",
	TagWriteSdfFile:              "WriteSdfFile",
	TagGetGraphSlacksData:        "GetGraphSlacksData",
	TagSetArcsDelay:              "SetArcsDelay",
	TagCreateClock:               "CreateClock",
	TagCreateGeneratedClock:      "CreateGeneratedClock",
	TagSetClockGroups:            "SetClockGroups",
	TagSetClockLatency:           "SetClockLatency",
	TagSetInterClockUncertainty:  "SetInterClockUncertainty",
	TagSetSingleClockUncertainty: "SetSingleClockUncertainty",
	TagSetSinglePinUncertainty:   "SetSinglePinUncertainty",
	TagSetSinglePortDelay:        "SetSinglePortDelay",
	TagSetInPortTransition:       "SetInPortTransition",
	TagSetFalsePath:              "SetFalsePath",
	TagSetMinMaxDelay:            "SetMinMaxDelay",
	TagSetMulticyclePath:         "SetMulticyclePath",
	TagDisableSinglePinTiming:    "DisableSinglePinTiming",
	TagDisableInstTiming:         "DisableInstTiming",
	TagSetGlobalTimingDerate:     "SetGlobalTimingDerate",
	TagReportTiming:              "ReportTiming",
	TagGetDesignStats:            "GetDesignStats",
	TagExecutionStatus:           "ExecutionStatus",
	TagGraphMap:                  "GraphMap",
	TagGraphSlacks:               "GraphSlacks",
	TagDesignStats:               "DesignStats",
}

func (t Tag) String() string {
	if s, ok := tagName[t]; ok {
		return s
	}
	return "UnknownTag"
}

// ResponseTag returns the tag of the response this command variant expects,
// per the client protocol's one-command-one-expected-response rule. The
// zero value is never a valid command tag, so callers should treat a false
// ok as "not a command tag".
func (t Tag) ResponseTag() (Tag, bool) {
	switch t {
	case TagGetGraphData:
		return TagGraphMap, true
	case TagGetGraphSlacksData:
		return TagGraphSlacks, true
	case TagGetDesignStats:
		return TagDesignStats, true
	case TagExit, TagPing, TagSetHierSeparator,
		TagReadLibFile, TagReadLibStream, TagClearLibs,
		TagReadVerilogFile, TagReadVerilogStream, TagLinkTop,
		TagClearNetlistBlocks, TagCreateNetlist,
		TagConnectContextPinNet, TagDisconnectContextPinNet,
		TagReadSpefFile, TagReadSpefStream, TagSetGroupNetLumpCap,
		TagReadSdfFile, TagReadSdfStream, TagWriteSdfFile,
		TagSetArcsDelay, TagCreateClock, TagCreateGeneratedClock,
		TagSetClockGroups, TagSetClockLatency, TagSetInterClockUncertainty,
		TagSetSingleClockUncertainty, TagSetSinglePinUncertainty,
		TagSetSinglePortDelay, TagSetInPortTransition, TagSetFalsePath,
		TagSetMinMaxDelay, TagSetMulticyclePath, TagDisableSinglePinTiming,
		TagDisableInstTiming, TagSetGlobalTimingDerate, TagReportTiming:
		return TagExecutionStatus, true
	default:
		return NoMessage, false
	}
}
