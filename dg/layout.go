package dg

// layout describes the in-memory layout of the native Example struct:
//
//	struct {
//	    float   features[num_features * 361];
//	    int32_t index;
//	    int32_t color;
//	    char    policy[905];
//	    int32_t winner;
//	    int32_t number;
//	};
//
// The features array is sized by the feature count the library reports at
// run time, so the layout cannot be a static declaration. It is computed
// once, right after get_num_features is queried, and cached on the handle.
type layout struct {
	numFeatures  int
	featureCount int // numFeatures * BoardPoints

	// byte offsets of the trailing fields
	index  int
	color  int
	policy int
	winner int
	number int

	size int
}

func exampleLayout(numFeatures int) layout {
	lo := layout{
		numFeatures:  numFeatures,
		featureCount: numFeatures * BoardPoints,
	}

	off := 4 * lo.featureCount
	lo.index = off
	off += 4
	lo.color = off
	off += 4
	lo.policy = off
	off += policyBytes

	// The 905-byte policy array leaves winner misaligned.
	off = align4(off)
	lo.winner = off
	off += 4
	lo.number = off
	off += 4

	lo.size = align4(off)
	return lo
}

func align4(off int) int {
	return (off + 3) &^ 3
}
