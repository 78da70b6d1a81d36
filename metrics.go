// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package rendezvous

import "expvar"

var (
	channelMetrics = new(expvar.Map)

	channelsOpenGauge       = new(expvar.Int)
	messagesSentCount       = new(expvar.Int)
	messagesReceivedCount   = new(expvar.Int)
	bytesSentCount          = new(expvar.Int)
	bytesReceivedCount      = new(expvar.Int)
	sendErrorsCount         = new(expvar.Int)
	receiveErrorsCount      = new(expvar.Int)
	truncatedReceivesCount  = new(expvar.Int)
	handshakesWithdrawCount = new(expvar.Int)
)

func init() {
	channelMetrics.Set("channels_open", channelsOpenGauge)
	channelMetrics.Set("messages_sent", messagesSentCount)
	channelMetrics.Set("messages_received", messagesReceivedCount)
	channelMetrics.Set("bytes_sent", bytesSentCount)
	channelMetrics.Set("bytes_received", bytesReceivedCount)
	channelMetrics.Set("send_errors", sendErrorsCount)
	channelMetrics.Set("receive_errors", receiveErrorsCount)
	channelMetrics.Set("truncated_receives", truncatedReceivesCount)
	channelMetrics.Set("handshakes_withdrawn", handshakesWithdrawCount)
}

// ChannelMetrics returns a map of exported channel metrics for use with the
// expvar package. This map is shared among all channels created by Open. The
// caller is free to add or remove metrics in the map, but note that such
// changes will affect all channels.
//
// The caller is responsible for publishing the metrics to the exporter via
// expvar.Publish or similar.
func ChannelMetrics() *expvar.Map { return channelMetrics }
