package segy

// reelHeaderSchema and traceHeaderSchema are never instantiated for their
// field values -- they exist purely to carry `segy:"offset=...,type=...`
// struct tags that registry.go parses with stagparser at init time to
// build ReelRegistry and TraceRegistry. This mirrors the teacher's own use
// of stagparser to drive TileDB array-schema construction from
// `tiledb:"dtype=...,ftype=..."` tags on PingHeaders/BeamArray (ping.go) --
// here the same tag-driven-schema idiom builds the byte-offset registry
// spec §3/§4.2 calls for, instead of a pair of raw parallel arrays.
//
// Field offsets, types and names are transcribed from the original's
// segy_header_types/segy_header_names and trace_header_types/
// trace_header_names tables (segy-change.c lines 179-259). Fields present
// in the offset table but absent from the name table in the original are
// given an empty name tag -- they remain addressable by numeric offset
// selector but not by the named form, exactly as in the original.
type reelHeaderSchema struct {
	JobIdentificationNumber                               int `segy:"offset=3200,type=I,name=JOB_IDENTIFICATION_NUMBER"`
	LineNumber                                             int `segy:"offset=3204,type=I,name=LINE_NUMBER"`
	ReelNumber                                             int `segy:"offset=3208,type=I,name=REEL_NUMBER"`
	NumberOfDataTracesPerRecord                            int `segy:"offset=3212,type=S,name=NUMBER_OF_DATA_TRACES_PER_RECORD"`
	NumberOfAuxillaryTracesPerRecord                       int `segy:"offset=3214,type=S,name=NUMBER_OF_AUXILLARY_TRACES_PER_RECORD"`
	SampleIntervalForThisReelMicroseconds                  int `segy:"offset=3216,type=S,name=SAMPLE_INTERVAL_FOR_THIS_REEL_MICROSECONDS"`
	SampleIntervalForOriginalFieldRecordingMicroseconds    int `segy:"offset=3218,type=S,name=SAMPLE_INTERVAL_FOR_ORIGINAL_FIELD_RECORDING_MICROSECONDS"`
	NumberOfSamplesPerDataTraceForThisReel                 int `segy:"offset=3220,type=S,name=NUMBER_OF_SAMPLES_PER_DATA_TRACE_FOR_THIS_REEL"`
	NumberOfSamplesPerDataTraceOriginalFieldRecording      int `segy:"offset=3222,type=S,name=NUMBER_OF_SAMPLES_PER_DATA_TRACE_ORIGINAL_FIELD_RECORDING"`
	DataSampleFormatCode                                   int `segy:"offset=3224,type=S,name=DATA_SAMPLE_FORMAT_CODE"`
	NominalCdpFold                                         int `segy:"offset=3226,type=S,name=NOMINAL_CDP_FOLD"`
	TraceSortingCode                                       int `segy:"offset=3228,type=S,name=TRACE_SORTING_CODE"`
	NumberOfVerticallySummedTraces                         int `segy:"offset=3230,type=S,name=NUMBER_OF_VERTICALLY_SUMMED_TRACES"`
	SweepFrequencyAtStartHz                                int `segy:"offset=3232,type=S,name=SWEEP_FREQUENCY_AT_START_HZ"`
	SweepFrequencyAtEndHz                                  int `segy:"offset=3234,type=S,name=SWEEP_FREQUENCY_AT_END_HZ"`
	SweepLengthMilliseconds                                int `segy:"offset=3236,type=S,name=SWEEP_LENGTH_MILLISECONDS"`
	SweepType                                               int `segy:"offset=3238,type=S,name=SWEEP_TYPE"`
	TraceNumberOfSweepChannel                              int `segy:"offset=3240,type=S,name=TRACE_NUMBER_OF_SWEEP_CHANNEL"`
	SweepTaperLengthAtStartMilliseconds                    int `segy:"offset=3242,type=S,name=SWEEP_TAPER_LENGTH_AT_START_MILLISECONDS"`
	SweepTaperLengthAtEndMilliseconds                      int `segy:"offset=3244,type=S,name=SWEEP_TAPER_LENGTH_AT_END_MILLISECONDS"`
	TaperType                                               int `segy:"offset=3246,type=S,name=TAPER_TYPE"`
	CorrelatedDataTraces                                   int `segy:"offset=3248,type=S,name=CORRELATED_DATA_TRACES"`
	BinaryGainRecovered                                    int `segy:"offset=3250,type=S,name=BINARY_GAIN_RECOVERED"`
	AmplitudeRecoveryMethod                                int `segy:"offset=3252,type=S,name=AMPLITUDE_RECOVERY_METHOD"`
	MeasurementSystem                                      int `segy:"offset=3254,type=S,name=MEASUREMENT_SYSTEM"`
	ImpulseSignal                                          int `segy:"offset=3256,type=S,name=IMPULSE_SIGNAL"`
	VibratoryPolarityCode                                  int `segy:"offset=3258,type=S,name=VIBRATORY_POLARITY_CODE"`
}

type traceHeaderSchema struct {
	TraceSequenceNumberWithinLine                       int `segy:"offset=0,type=I,name=TRACE_SEQUENCE_NUMBER_WITHIN_LINE"`
	TraceSequenceNumberWithinReel                       int `segy:"offset=4,type=I,name=TRACE_SEQUENCE_NUMBER_WITHIN_REEL"`
	OriginalFieldRecordNumber                           int `segy:"offset=8,type=I,name=ORIGINAL_FIELD_RECORD_NUMBER"`
	TraceNumberWithinFieldRecord                        int `segy:"offset=12,type=I,name=TRACE_NUMBER_WITHIN_FIELD_RECORD"`
	SourcePointNumber                                   int `segy:"offset=16,type=I,name=SOURCE_POINT_NUMBER"`
	CdpNumber                                           int `segy:"offset=20,type=I,name=CDP_NUMBER"`
	CdpSequenceNumber                                   int `segy:"offset=24,type=I,name=CDP_SEQUECE_NUMBER"`
	TraceIdentificationCode                             int `segy:"offset=28,type=S,name=TRACE_IDENTIFICATION_CODE"`
	NumberOfVerticallySummedTraces                      int `segy:"offset=30,type=S,name=NUMBER_OF_VERTICALLY_SUMMED_TRACES"`
	NumberOfHorizontallySummedTracesFold                int `segy:"offset=32,type=S,name=NUMBER_OF_HORIZONTALLY_SUMMED_TRACES_FOLD"`
	DataUse                                             int `segy:"offset=34,type=S,name=DATA_USE"`
	SourceReceiverOffsetInFeetOrMeters                  int `segy:"offset=36,type=I,name=SOURCE_RECEIVER_OFFSET_IN_FEET_OR_METERS"`
	ReceiverGroupElevationInFeetOrMeters                int `segy:"offset=40,type=I,name=RECEIVER_GROUP_ELEVATION_IN_FEET_OR_METERS"`
	SurfaceElevationAtSourceFeetOrMeters                int `segy:"offset=44,type=I,name=SURFACE_ELEVATION_AT_SOURCE_FEET_OR_METERS"`
	SourceDepthBelowSurface                             int `segy:"offset=48,type=I,name=SOURCE_DEPTH_BELOW_SURFACE"`
	DatumElevationAtReceiverGroup                       int `segy:"offset=52,type=I,name=DATUM_ELEVATION_AT_RECEIVER_GROUP"`
	DatumElevationAtSource                              int `segy:"offset=56,type=I,name=DATUM_ELEVATION_AT_SOURCE"`
	WaterDepthAtSource                                  int `segy:"offset=60,type=I,name=WATER_DEPTH_AT_SOURCE"`
	WaterDepthAtReceiverGroup                           int `segy:"offset=64,type=I,name=WATER_DEPTH_AT_RECEIVER_GROUP"`
	ElevationMultiplicationScalarForBytes               int `segy:"offset=68,type=S,name=ELEVATION_MULTIPLICATION_SCALAR_FOR_BYTES"`
	CoordinateMultiplicationScalarForBytes7388          int `segy:"offset=70,type=S,name=COORDINATE_MULTIPLICATION_SCALAR_FOR_BYTES_73_88"`
	SourceXFeetOrMetersOrLongitude                      int `segy:"offset=72,type=I,name=SOURCE_X_FEET_OR_METERS_OR_LONGITUDE"`
	SourceYFeetOrMetersOrLatitude                       int `segy:"offset=76,type=I,name=SOURCE_Y_FEET_OR_METERS_OR_LATITUDE"`
	ReceiverXFeetOrMetersOrLongitude                    int `segy:"offset=80,type=I,name=RECEIVER_X_FEET_OR_METERS_OR_LONGITUDE"`
	ReceiverYFeetOrMetersOrLatitude                     int `segy:"offset=84,type=I,name=RECEIVER_Y_FEET_OR_METERS_OR_LATITUDE"`
	CoordinateUnits                                     int `segy:"offset=88,type=S,name=COORDINATE_UNITS"`
	WeatheringVelocity                                  int `segy:"offset=90,type=S,name=WEATHERING_VELOCITY"`
	SubWeatheringVelocity                               int `segy:"offset=92,type=S,name=SUB_WEATHERING_VELOCITY"`
	UpholeTimeAtSourceMilliseconds                      int `segy:"offset=94,type=S,name=UPHOLE_TIME_AT_SOURCE_MILLISECONDS"`
	UpholeTimeAtGroupMilliseconds                       int `segy:"offset=96,type=S,name=UPHOLE_TIME_AT_GROUP_MILLISECONDS"`
	SourceStaticCorrectionMilliseconds                  int `segy:"offset=98,type=S,name=SOURCE_STATIC_CORRECTION_MILLISECONDS"`
	ReceiverStaticCorrectionMilliseconds                int `segy:"offset=100,type=S,name=RECEIVER_STATIC_CORRECTION_MILLISECONDS"`
	TotalStaticApplied                                  int `segy:"offset=102,type=S,name=TOTAL_STATIC_APPLIED"`
	LagTimeABetweenTraceHeaderTimeAndTime               int `segy:"offset=104,type=S,name=LAG_TIME_A_BETWEEN_TRACE_HEADER_TIME_AND_TIME"`
	LagTimeBBetweenTimeBreakAndSourceTime               int `segy:"offset=106,type=S,name=LAG_TIME_B_BETWEEN_TIME_BREAK_AND_SOURCE_TIME"`
	DelayTimeBetweenSourceAndRecordingTime              int `segy:"offset=108,type=S,name=DELAY_TIME_BETWEEN_SOURCE_AND_RECORDING_TIME"`
	BruteStartTimeMilliseconds                          int `segy:"offset=110,type=S,name=BRUTE_START_TIME_MILLISECONDS"`
	MuteEndTimeMilliseconds                             int `segy:"offset=112,type=S,name=MUTE_END_TIME_MILLISECONDS"`
	NumberOfSamplesInThisTrace                          int `segy:"offset=114,type=S,name=NUMBER_OF_SAMPLES_IN_THIS_TRACE"`
	SampleIntervalMicroseconds                          int `segy:"offset=116,type=S,name=SAMPLE_INTERVAL_MICROSECONDS"`
	GainType1Fixed2Binary                               int `segy:"offset=118,type=S,name=GAIN_TYPE_1__FIXED_2__BINARY"`
	InstrumentGainConstant                              int `segy:"offset=120,type=S,name=INSTRUMENT_GAIN_CONSTANT"`
	InstrumentEarlyOrInitialGain                        int `segy:"offset=122,type=S,name=INSTRUMENT_EARLY_OR_INITIAL_GAIN"`
	Correlated1Yes2No                                   int `segy:"offset=124,type=S,name=CORRELATED_1__YES_2__NO"`
	SweepFrequencyAtStartHz                             int `segy:"offset=126,type=S,name=SWEEP_FREQUENCY_AT_START_HZ"`
	SweepFrequencyAtEndHz                               int `segy:"offset=128,type=S,name=SWEEP_FREQUENCY_AT_END_HZ"`
	SweepLengthMilliseconds                             int `segy:"offset=130,type=S,name=SWEEP_LENGTH_MILLISECONDS"`
	SweepType1Linear2Parabolic                          int `segy:"offset=132,type=S,name=SWEEP_TYPE_1__LINEAR_2__PARABOLIC"`
	SweepTaperLengthAtStartMilliseconds                 int `segy:"offset=134,type=S,name=SWEEP_TAPER_LENGTH_AT_START_MILLISECONDS"`
	SweepTaperLengthAtEndMilliseconds                   int `segy:"offset=136,type=S,name=SWEEP_TAPER_LENGTH_AT_END_MILLISECONDS"`
	SweepTaperType1Linear                               int `segy:"offset=138,type=S,name=SWEEP_TAPER_TYPE_1__LINEAR"`
	AliasFilterFrequencyHz                              int `segy:"offset=140,type=S,name=ALIAS_FILTER_FREQUENCY_HZ"`
	AliasFilterSlopeDbOctave                            int `segy:"offset=142,type=S,name=ALIAS_FILTER_SLOPE_DBOCTAVE"`
	NotchFilterFrequencyHz                              int `segy:"offset=144,type=S,name=NOTCH_FILTER_FREQUENCY_HZ"`
	NotchFilterSlopeDbOctave                            int `segy:"offset=146,type=S,name=NOTCH_FILTER_SLOPE_DBOCTAVE"`
	LowCutFrequencyHz                                   int `segy:"offset=148,type=S,name=LOW_CUT_FREQUENCY_HZ"`
	HighCutFrequencyHz                                  int `segy:"offset=150,type=S,name=HIGH_CUT_FREQUENCY_HZ"`
	LowCutFilterSlopeDbOctave                           int `segy:"offset=152,type=S,name=LOW_CUT_FILTER_SLOPE_DBOCTAVE"`
	HighCutFilterSlopeDbOctave                          int `segy:"offset=154,type=S,name=HIGH_CUT_FILTER_SLOPE_DBOCTAVE"`
	YearDataRecorded                                    int `segy:"offset=156,type=S,name=YEAR_DATA_RECORDED"`
	DayOfYear                                            int `segy:"offset=158,type=S,name=DAY_OF_YEAR"`
	HourOfDay24HourClock                                int `segy:"offset=160,type=S,name=HOUR_OF_DAY_24_HOUR_CLOCK"`
	MinuteOfHour                                        int `segy:"offset=162,type=S,name=MINUTE_OF_HOUR"`
	SecondOfMinuteForTraceStart                         int `segy:"offset=164,type=S,name=SECOND_OF_MINUTE_FOR_TRACE_START"`
	TimeBasisCode1Local2Gmt3Other                       int `segy:"offset=166,type=S,name=TIME_BASIS_CODE_1LOCAL_2GMT_3OTHER"`
	TraceWeightingFactor2NVoltsForLeast                 int `segy:"offset=168,type=S,name=TRACE_WEIGHTING_FACTOR_2N_VOLTS_FOR_LEAST"`
	ReceiverGroupNumberAtRollSwitchPosition1            int `segy:"offset=170,type=S,name=RECEIVER_GROUP_NUMBER_AT_ROLL_SWITCH_POSITION_1"`
	ReceiverGroupNumberForFirstTraceInFieldRecord        int `segy:"offset=172,type=S,name=RECEIVER_GROUP_NUMBER_FOR_FIRST_TRACE_IN_FIELD_RECORD"`
	ReceiverGroupNumberForLastTraceInFieldRecord         int `segy:"offset=174,type=S,name=RECEIVER_GROUP_NUMBER_FOR_LAST_TRACE_IN_FIELD_RECORD"`
	GapSizeNumberOfReceiverGroupsDropped                int `segy:"offset=176,type=S,name=GAP_SIZE_NUMBER_OF_RECEIVER_GROUPS_DROPPED"`
	OvertravelAssociatedWithTaperAtStartOrEnd           int `segy:"offset=178,type=S,name=OVERTRAVEL_ASSOCIATED_WITH_TAPER_AT_START_OR_END"`
	// Fields present in the original's offset table (trace_header_types)
	// but past the end of its (shorter) name table: addressable only by
	// numeric offset selector, exactly as in the original.
	Reserved180 int `segy:"offset=180,type=U"`
	Reserved186 int `segy:"offset=186,type=U"`
	Reserved194 int `segy:"offset=194,type=U"`
	Reserved198 int `segy:"offset=198,type=S"`
	Reserved200 int `segy:"offset=200,type=I"`
	Reserved204 int `segy:"offset=204,type=S"`
	Reserved206 int `segy:"offset=206,type=S"`
	Reserved208 int `segy:"offset=208,type=S"`
	Reserved210 int `segy:"offset=210,type=S"`
	Reserved212 int `segy:"offset=212,type=S"`
	Reserved214 int `segy:"offset=214,type=S"`
	Reserved216 int `segy:"offset=216,type=S"`
	Reserved218 int `segy:"offset=218,type=S"`
	Reserved220 int `segy:"offset=220,type=F"`
	Reserved224 int `segy:"offset=224,type=S"`
	Reserved226 int `segy:"offset=226,type=S"`
	Reserved228 int `segy:"offset=228,type=I"`
	Reserved232 int `segy:"offset=232,type=I"`
	Reserved236 int `segy:"offset=236,type=I"`
}
